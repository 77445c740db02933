package extract

import (
	"strings"
	"testing"

	"github.com/jobsight/jobsight/pkg/jobsight/dict"
	"github.com/jobsight/jobsight/pkg/jobsight/facts"
)

func matchesOfType(matches []facts.Match, kind facts.MatchType) []facts.Match {
	var out []facts.Match
	for _, m := range matches {
		if m.Type == kind {
			out = append(out, m)
		}
	}
	return out
}

func TestExtractRemoteAndCity(t *testing.T) {
	e := New(nil)
	matches := e.Extract("Удаленно, Москва")
	locs := matchesOfType(matches, facts.TypeLocation)
	if len(locs) != 2 {
		t.Fatalf("got %d location matches, want 2: %+v", len(locs), matches)
	}
	first := locs[0].Value.(facts.Location)
	if !first.Remote || first.City != "" {
		t.Errorf("first location = %+v, want remote", first)
	}
	second := locs[1].Value.(facts.Location)
	if second.City != "Москва" {
		t.Errorf("second location = %+v, want city Москва", second)
	}
	if locs[0].Stop > locs[1].Start {
		t.Errorf("location spans overlap: %+v", locs)
	}
}

func TestExtractCityCaseForm(t *testing.T) {
	e := New(nil)
	matches := matchesOfType(e.Extract("офис в Москве"), facts.TypeLocation)
	if len(matches) != 1 {
		t.Fatalf("got %d location matches, want 1", len(matches))
	}
	if loc := matches[0].Value.(facts.Location); loc.City != "Москва" {
		t.Errorf("city = %q, want canonical Москва", loc.City)
	}
}

func TestExtractYoSpellingAgainstYeSurface(t *testing.T) {
	// a surface registered only in е-spelling must still match ё-spelled
	// text: stem lookup folds ё, and the literal gate has to agree
	dicts := Default()
	dicts.Remote = dict.New("remote", true, []dict.Entry{
		{Canonical: "remote", Surfaces: []string{"удаленка"}},
	})
	e := New(dicts)
	matches := matchesOfType(e.Extract("работа удалёнка"), facts.TypeLocation)
	if len(matches) != 1 {
		t.Fatalf("got %d location matches, want 1: %+v", len(matches), matches)
	}
	if loc := matches[0].Value.(facts.Location); !loc.Remote {
		t.Errorf("location = %+v, want remote", loc)
	}
}

func TestExtractMetroStation(t *testing.T) {
	e := New(nil)
	matches := matchesOfType(e.Extract("офис у метро Сокольники"), facts.TypeLocation)
	if len(matches) != 1 {
		t.Fatalf("got %d location matches, want 1", len(matches))
	}
	if loc := matches[0].Value.(facts.Location); loc.Metro != "Сокольники" {
		t.Errorf("metro = %q, want Сокольники", loc.Metro)
	}
}

func TestExtractGradeAndTitle(t *testing.T) {
	e := New(nil)
	matches := matchesOfType(e.Extract("Ищем Senior Data Scientist"), facts.TypePosition)
	if len(matches) != 2 {
		t.Fatalf("got %d position matches, want 2: %+v", len(matches), matches)
	}
	grade := matches[0].Value.(facts.Position)
	if grade.Grade != facts.GradeSenior || grade.Title != "" {
		t.Errorf("first position = %+v, want grade senior", grade)
	}
	title := matches[1].Value.(facts.Position)
	if title.Title != facts.TitleDS || title.Grade != "" {
		t.Errorf("second position = %+v, want title ds", title)
	}
}

func TestExtractMultiTokenGrade(t *testing.T) {
	e := New(nil)
	matches := matchesOfType(e.Extract("нужен team lead в платформу"), facts.TypePosition)
	if len(matches) != 1 {
		t.Fatalf("got %d position matches, want 1: %+v", len(matches), matches)
	}
	if pos := matches[0].Value.(facts.Position); pos.Grade != facts.GradeLead {
		t.Errorf("grade = %q, want lead", pos.Grade)
	}
}

func TestExtractCompanyFromEmail(t *testing.T) {
	e := New(nil)
	text := "пишите на ivan@acme.io"
	matches := matchesOfType(e.Extract(text), facts.TypeCompany)
	if len(matches) != 1 {
		t.Fatalf("got %d company matches, want 1: %+v", len(matches), matches)
	}
	m := matches[0]
	if got := m.Value.(facts.Company); got.Domain != "acme.io" {
		t.Errorf("domain = %q, want acme.io", got.Domain)
	}
	norm := e.Normalize(text)
	if span := norm[m.Start:m.Stop]; span != "ivan@acme.io" {
		t.Errorf("span = %q, want the full address", span)
	}
}

func TestExtractFreeMailSuppressed(t *testing.T) {
	e := New(nil)
	for _, text := range []string{
		"резюме на foo@gmail.com",
		"контакт: hr@mail.ru",
		"cv@yandex.ru ждем",
	} {
		if got := matchesOfType(e.Extract(text), facts.TypeCompany); len(got) != 0 {
			t.Errorf("%q: emitted %+v, want none", text, got)
		}
	}
}

func TestExtractEmailDomainNormalized(t *testing.T) {
	e := New(nil)
	matches := matchesOfType(e.Extract("jobs@WWW.Acme.IO"), facts.TypeCompany)
	if len(matches) != 1 {
		t.Fatalf("got %d company matches, want 1", len(matches))
	}
	if got := matches[0].Value.(facts.Company); got.Domain != "acme.io" {
		t.Errorf("domain = %q, want acme.io", got.Domain)
	}
}

func TestExtractCompanyDictAndEmailCoexist(t *testing.T) {
	e := New(nil)
	matches := matchesOfType(e.Extract("Яндекс ищет, резюме на hh@team-hiring.ru"), facts.TypeCompany)
	if len(matches) != 2 {
		t.Fatalf("got %d company matches, want 2: %+v", len(matches), matches)
	}
	if got := matches[0].Value.(facts.Company); got.Domain != "yandex.ru" {
		t.Errorf("dict domain = %q, want yandex.ru", got.Domain)
	}
	if got := matches[1].Value.(facts.Company); got.Domain != "team-hiring.ru" {
		t.Errorf("email domain = %q, want team-hiring.ru", got.Domain)
	}
}

func TestExtractFullMessage(t *testing.T) {
	e := New(nil)
	text := "Ищем Senior Data Scientist в Сбер, Москва или удаленно, вилка от 250 до 400 тыс руб на руки, резюме на cv@green-retail.ru"
	matches := e.Extract(text)

	salaries := matchesOfType(matches, facts.TypeSalaryRange)
	if len(salaries) != 1 {
		t.Fatalf("got %d salary matches, want 1: %+v", len(salaries), matches)
	}
	fork := salaries[0].Value.(facts.SalaryRange)
	want := facts.SalaryRange{Min: 250000, Max: 400000, Currency: facts.RUB, Tax: facts.TaxNet}
	if fork != want {
		t.Errorf("fork = %+v, want %+v", fork, want)
	}

	if locs := matchesOfType(matches, facts.TypeLocation); len(locs) != 2 {
		t.Errorf("got %d location matches, want 2", len(locs))
	}
	if positions := matchesOfType(matches, facts.TypePosition); len(positions) != 2 {
		t.Errorf("got %d position matches, want 2", len(positions))
	}
	// dict hit on the name plus the contact address
	if companies := matchesOfType(matches, facts.TypeCompany); len(companies) != 2 {
		t.Errorf("got %d company matches, want 2", len(companies))
	}
}

func TestExtractOffsetsAddressNormalizedText(t *testing.T) {
	e := New(nil)
	raw := "вилка 60–90 т.р." // en dash between the bounds
	norm := e.Normalize(raw)
	if strings.ContainsRune(norm, '–') {
		t.Fatalf("normalized text still contains the en dash: %q", norm)
	}
	matches := matchesOfType(e.Extract(raw), facts.TypeSalaryRange)
	if len(matches) != 1 {
		t.Fatalf("got %d salary matches, want 1", len(matches))
	}
	span := norm[matches[0].Start:matches[0].Stop]
	if !strings.HasPrefix(span, "60") || !strings.Contains(span, "90") {
		t.Errorf("span = %q, does not cover the fork", span)
	}
}

func TestExtractNoiseAndEmpty(t *testing.T) {
	e := New(nil)
	for _, text := range []string{"", "   ", "всем привет!", "интересный пост про нейросети"} {
		if got := e.Extract(text); len(got) != 0 {
			t.Errorf("%q: unexpected matches %+v", text, got)
		}
	}
}

func TestExtractConcurrentUse(t *testing.T) {
	e := New(nil)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				e.Extract("Senior Data Scientist, Москва, 150-250 т.р., cv@acme.io")
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
