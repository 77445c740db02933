package extract

import "github.com/jobsight/jobsight/pkg/jobsight/dict"

// Dictionaries is the full static configuration of the extractors:
// closed surface-form mappings, built once and read-only afterwards.
// Swapping a dictionary never requires touching the pattern engine.
type Dictionaries struct {
	Currencies *dict.Dict
	Scales     *dict.Dict
	Taxes      *dict.Dict
	PerMonth   *dict.Dict
	Approx     *dict.Dict
	Cities     *dict.Dict
	Metro      *dict.Dict
	Remote     *dict.Dict
	Grades     *dict.Dict
	Titles     *dict.Dict
	Companies  *dict.Dict
}

// Scale canonical values, parsed by the salary interpreter.
const (
	scaleThousand = "1000"
	scaleMillion  = "1000000"
)

// Default returns the built-in dictionaries tuned for the ods-style
// mixed Russian/English job chat corpus.
func Default() *Dictionaries {
	return &Dictionaries{
		Currencies: dict.New("currencies", false, []dict.Entry{
			{Canonical: "USD", Surfaces: []string{"$", "usd", "дол", "долл", "доллар", "доллара", "долларов", "бакс", "баксов"}},
			{Canonical: "EUR", Surfaces: []string{"€", "eur", "евро"}},
			{Canonical: "GBP", Surfaces: []string{"£", "gbp", "фунт", "фунтов"}},
			{Canonical: "RUB", Surfaces: []string{"₽", "rub", "руб", "руб.", "рубль", "рубля", "рублей", "рубли", "р."}},
		}),
		Scales: dict.New("scales", false, []dict.Entry{
			{Canonical: scaleThousand, Surfaces: []string{"к", "k", "тыс", "тыс.", "тысяч", "тысячи", "т.р.", "т. р.", "тр", "т.р"}},
			{Canonical: scaleMillion, Surfaces: []string{"млн", "млн.", "миллион", "миллиона", "миллионов", "m"}},
		}),
		Taxes: dict.New("taxes", false, []dict.Entry{
			{Canonical: "net", Surfaces: []string{"net", "чистыми", "на руки", "после вычета", "после налогов", "нетто"}},
			{Canonical: "gross", Surfaces: []string{"gross", "грязными", "до вычета", "до налогов", "гросс"}},
		}),
		PerMonth: dict.New("permonth", false, []dict.Entry{
			{Canonical: "month", Surfaces: []string{"в месяц", "месяц", "мес", "мес.", "/мес", "month", "monthly", "в мес"}},
		}),
		Approx: dict.New("approx", false, []dict.Entry{
			{Canonical: "approx", Surfaces: []string{"~", "примерно", "около", "приблизительно"}},
		}),
		Cities: dict.New("cities", true, []dict.Entry{
			{Canonical: "Москва", Surfaces: []string{"москва", "мск"}},
			{Canonical: "Санкт-Петербург", Surfaces: []string{"санкт-петербург", "петербург", "питер", "спб"}},
			{Canonical: "Новосибирск", Surfaces: []string{"новосибирск"}},
			{Canonical: "Екатеринбург", Surfaces: []string{"екатеринбург"}},
			{Canonical: "Казань", Surfaces: []string{"казань"}},
			{Canonical: "Нижний Новгород", Surfaces: []string{"нижний новгород"}},
			{Canonical: "Минск", Surfaces: []string{"минск"}},
			{Canonical: "Киев", Surfaces: []string{"киев"}},
			{Canonical: "Алматы", Surfaces: []string{"алматы"}},
			{Canonical: "Лондон", Surfaces: []string{"лондон", "london"}},
			{Canonical: "Берлин", Surfaces: []string{"берлин", "berlin"}},
		}),
		Metro: dict.New("metro", true, []dict.Entry{
			{Canonical: "Сокольники", Surfaces: []string{"сокольники"}},
			{Canonical: "Тульская", Surfaces: []string{"тульская"}},
			{Canonical: "Белорусская", Surfaces: []string{"белорусская"}},
			{Canonical: "Технопарк", Surfaces: []string{"технопарк"}},
			{Canonical: "Парк культуры", Surfaces: []string{"парк культуры"}},
			{Canonical: "Чистые пруды", Surfaces: []string{"чистые пруды"}},
			{Canonical: "Площадь Ленина", Surfaces: []string{"площадь ленина"}},
		}),
		Remote: dict.New("remote", true, []dict.Entry{
			{Canonical: "remote", Surfaces: []string{
				"удаленно", "удалённо", "удаленка", "удалёнка",
				"удаленная работа", "удалённая работа", "remote", "remotely",
			}},
		}),
		Grades: dict.New("grades", true, []dict.Entry{
			{Canonical: "intern", Surfaces: []string{"intern", "trainee", "стажер", "стажёр", "интерн"}},
			{Canonical: "junior", Surfaces: []string{"junior", "джун", "джуниор", "начинающий"}},
			{Canonical: "middle", Surfaces: []string{"middle", "миддл", "мидл"}},
			{Canonical: "senior", Surfaces: []string{"senior", "сеньор", "синьор", "старший"}},
			{Canonical: "lead", Surfaces: []string{"lead", "team lead", "teamlead", "лид", "тимлид", "тим лид", "ведущий"}},
		}),
		Titles: dict.New("titles", true, []dict.Entry{
			{Canonical: "ds", Surfaces: []string{"data scientist", "датасаентист", "дата сайентист", "дата саентист", "ds"}},
			{Canonical: "da", Surfaces: []string{"data analyst", "дата аналитик"}},
			{Canonical: "de", Surfaces: []string{"data engineer", "дата инженер"}},
			{Canonical: "analyst", Surfaces: []string{"analyst", "аналитик"}},
			{Canonical: "researcher", Surfaces: []string{"researcher", "исследователь", "рисечер"}},
			{Canonical: "dev", Surfaces: []string{"developer", "разработчик", "программист"}},
		}),
		Companies: dict.New("companies", true, []dict.Entry{
			{Canonical: "sberbank.ru", Surfaces: []string{"сбер", "сбербанк", "sber", "sberbank"}},
			{Canonical: "tinkoff.ru", Surfaces: []string{"тинькофф", "тиньков", "tinkoff"}},
			{Canonical: "yandex.ru", Surfaces: []string{"яндекс", "yandex"}},
			{Canonical: "avito.ru", Surfaces: []string{"авито", "avito"}},
			{Canonical: "ozon.ru", Surfaces: []string{"озон", "ozon"}},
			{Canonical: "mts.ru", Surfaces: []string{"мтс", "mts"}},
			{Canonical: "vk.com", Surfaces: []string{"вконтакте", "vk", "вк"}},
			{Canonical: "kaspersky.ru", Surfaces: []string{"касперский", "kaspersky"}},
			{Canonical: "x5.ru", Surfaces: []string{"x5", "х5"}},
			{Canonical: "huawei.com", Surfaces: []string{"huawei", "хуавей"}},
			{Canonical: "gazprom.ru", Surfaces: []string{"газпром", "gazprom"}},
		}),
	}
}
