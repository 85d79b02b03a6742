// Package numerals переводит числа в словесную форму на русском и казахском
// языках и содержит вспомогательные функции согласования для генерации
// юридического текста.
package numerals

import "strings"

// Lang язык генерируемого текста.
type Lang string

const (
	LangRu Lang = "ru"
	LangKk Lang = "kk"
)

var unitsRu = [10]string{"ноль", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}

// Женские формы единиц для согласования с «тысяча».
var unitsRuFem = [10]string{"ноль", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}

var teensRu = [10]string{"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать", "пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"}

var tensRu = [10]string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто"}

var hundredsRu = [10]string{"", "сто", "двести", "триста", "четыреста", "пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот"}

// Разрядные слова с формами один/несколько/много.
type scaleRu struct {
	one, few, many string
	feminine       bool
}

var scalesRu = []scaleRu{
	{},
	{one: "тысяча", few: "тысячи", many: "тысяч", feminine: true},
	{one: "миллион", few: "миллиона", many: "миллионов"},
	{one: "миллиард", few: "миллиарда", many: "миллиардов"},
}

var unitsKk = [10]string{"нөл", "бір", "екі", "үш", "төрт", "бес", "алты", "жеті", "сегіз", "тоғыз"}

var tensKk = [10]string{"", "он", "жиырма", "отыз", "қырық", "елу", "алпыс", "жетпіс", "сексен", "тоқсан"}

var scalesKk = []string{"", "мың", "миллион", "миллиард"}

// Старший поддерживаемый разряд — миллиарды.
const maxSpellable = 1_000_000_000_000

// ToWords переводит неотрицательное целое число в слова. Для отрицательного
// значения и для чисел за пределами поддерживаемых разрядов возвращает
// пустую строку: вызывающая сторона подставляет маркер незаполненного поля.
func ToWords(n int64, lang Lang) string {
	if n < 0 || n >= maxSpellable {
		return ""
	}
	if lang == LangKk {
		return toWordsKk(n)
	}
	return toWordsRu(n)
}

func toWordsRu(n int64) string {
	if n == 0 {
		return unitsRu[0]
	}

	var parts []string
	// Разбиваем на тройки разрядов, старшие вперёд.
	triples := splitTriples(n)
	for i, t := range triples {
		if t == 0 {
			continue
		}
		scaleIdx := len(triples) - 1 - i
		scale := scalesRu[scaleIdx]
		parts = append(parts, tripleRu(t, scale.feminine)...)
		if scaleIdx > 0 {
			parts = append(parts, pluralRu(t, scale.one, scale.few, scale.many))
		}
	}
	return strings.Join(parts, " ")
}

func tripleRu(t int64, feminine bool) []string {
	var words []string
	if h := t / 100; h > 0 {
		words = append(words, hundredsRu[h])
	}
	rest := t % 100
	switch {
	case rest == 0:
	case rest >= 10 && rest <= 19:
		words = append(words, teensRu[rest-10])
	default:
		if tens := rest / 10; tens > 0 {
			words = append(words, tensRu[tens])
		}
		if u := rest % 10; u > 0 {
			if feminine {
				words = append(words, unitsRuFem[u])
			} else {
				words = append(words, unitsRu[u])
			}
		}
	}
	return words
}

func toWordsKk(n int64) string {
	if n == 0 {
		return unitsKk[0]
	}

	var parts []string
	triples := splitTriples(n)
	for i, t := range triples {
		if t == 0 {
			continue
		}
		scaleIdx := len(triples) - 1 - i
		parts = append(parts, tripleKk(t)...)
		if scaleIdx > 0 {
			parts = append(parts, scalesKk[scaleIdx])
		}
	}
	return strings.Join(parts, " ")
}

func tripleKk(t int64) []string {
	var words []string
	if h := t / 100; h > 0 {
		// «жүз», а не «бір жүз»: единица перед сотней опускается.
		if h > 1 {
			words = append(words, unitsKk[h])
		}
		words = append(words, "жүз")
	}
	rest := t % 100
	if tens := rest / 10; tens > 0 {
		words = append(words, tensKk[tens])
	}
	if u := rest % 10; u > 0 {
		words = append(words, unitsKk[u])
	}
	return words
}

// splitTriples возвращает тройки разрядов числа, старшие вперёд.
func splitTriples(n int64) []int64 {
	if n == 0 {
		return []int64{0}
	}
	var reversed []int64
	for n > 0 {
		reversed = append(reversed, n%1000)
		n /= 1000
	}
	triples := make([]int64, len(reversed))
	for i, t := range reversed {
		triples[len(reversed)-1-i] = t
	}
	return triples
}
