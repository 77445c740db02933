// Package slackdump reads Slack workspace export archives: a zip with
// one users.json and per-channel directories of daily message files.
package slackdump

import (
	"archive/zip"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jobsight/jobsight/pkg/jobsight/internalerr"
)

// User is one workspace member from users.json.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RealName string `json:"real_name"`
	IsBot    bool   `json:"is_bot"`
}

// Message is one channel message that survived filtering. Text still
// holds raw Slack mrkdwn.
type Message struct {
	ID       string
	Author   string
	PostedAt time.Time
	Mrkdwn   string
}

// item is the raw export record. Fields irrelevant to filtering are
// ignored.
type item struct {
	Type     string `json:"type"`
	Subtype  string `json:"subtype"`
	TS       string `json:"ts"`
	ThreadTS string `json:"thread_ts"`
	Text     string `json:"text"`
	Profile  *struct {
		Name string `json:"name"`
	} `json:"user_profile"`
}

// Reader reads one export archive.
type Reader struct {
	path    string
	entropy *ulid.MonotonicEntropy
}

// NewReader creates a reader over the archive at path.
func NewReader(path string) *Reader {
	return &Reader{
		path:    path,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Users reads users.json from the archive root.
func (r *Reader) Users() ([]User, error) {
	data, err := r.readFile("users.json")
	if err != nil {
		return nil, err
	}
	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: users.json: %v", internalerr.ErrBadArchive, err)
	}
	return users, nil
}

// Messages reads every daily file of one channel, drops service
// records (subtype messages, thread replies, items without an author
// profile) and returns the rest in posting order.
func (r *Reader) Messages(channel string) ([]Message, error) {
	names, err := r.list(channel + "/*.json")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: channel %q has no message files", internalerr.ErrBadArchive, channel)
	}
	sort.Strings(names) // daily files are named YYYY-MM-DD.json

	var out []Message
	for _, name := range names {
		data, err := r.readFile(name)
		if err != nil {
			return nil, err
		}
		var items []item
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrBadArchive, name, err)
		}
		for _, it := range items {
			if it.Subtype != "" {
				continue
			}
			if it.ThreadTS != "" && it.ThreadTS != it.TS {
				continue
			}
			if it.Profile == nil || it.Profile.Name == "" {
				continue
			}
			postedAt, err := parseTS(it.TS)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrBadArchive, name, err)
			}
			out = append(out, Message{
				ID:       ulid.MustNew(ulid.Timestamp(postedAt), r.entropy).String(),
				Author:   it.Profile.Name,
				PostedAt: postedAt,
				Mrkdwn:   it.Text,
			})
		}
	}
	return out, nil
}

func (r *Reader) list(pattern string) ([]string, error) {
	zr, err := zip.OpenReader(r.path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		ok, err := path.Match(pattern, f.Name)
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, f.Name)
		}
	}
	return names, nil
}

func (r *Reader) readFile(name string) ([]byte, error) {
	zr, err := zip.OpenReader(r.path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	f, err := zr.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrBadArchive, name, err)
	}
	defer f.Close()

	return io.ReadAll(f)
}

// parseTS converts a Slack "seconds.fraction" timestamp into UTC time.
// The fraction is parsed digit-wise; going through float64 would lose
// sub-microsecond precision at current epoch values.
func parseTS(value string) (time.Time, error) {
	secStr, fracStr, _ := strings.Cut(value, ".")
	sec, err := strconv.ParseInt(secStr, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad ts %q", value)
	}
	var nsec int64
	if fracStr != "" {
		if len(fracStr) > 9 {
			fracStr = fracStr[:9]
		}
		nsec, err = strconv.ParseInt(fracStr, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("bad ts %q", value)
		}
		for i := len(fracStr); i < 9; i++ {
			nsec *= 10
		}
	}
	return time.Unix(sec, nsec).UTC(), nil
}

// threadsIntroDate is when the channel finished moving job discussion
// into threads; top-level messages before it are mostly chatter.
var threadsIntroDate = time.Date(2017, 4, 1, 0, 0, 0, 0, time.UTC)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// IsVacancy reports whether a message looks like an actual job posting
// rather than discussion: posted after the threads transition and long
// enough to carry a real description.
func IsVacancy(text string, postedAt time.Time) bool {
	if postedAt.Before(threadsIntroDate) {
		return false
	}
	return len(wordPattern.FindAllString(text, -1)) > 50
}
