package numerals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToWords_Russian(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "ноль"},
		{1, "один"},
		{2, "два"},
		{4, "четыре"},
		{5, "пять"},
		{11, "одиннадцать"},
		{19, "девятнадцать"},
		{21, "двадцать один"},
		{40, "сорок"},
		{100, "сто"},
		{245, "двести сорок пять"},
		{1000, "одна тысяча"},
		{2000, "две тысячи"},
		{5000, "пять тысяч"},
		{12000, "двенадцать тысяч"},
		{150000, "сто пятьдесят тысяч"},
		{231521, "двести тридцать одна тысяча пятьсот двадцать один"},
		{1000000, "один миллион"},
		{2000345, "два миллиона триста сорок пять"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ToWords(tc.n, LangRu), "n=%d", tc.n)
	}
}

func TestToWords_Kazakh(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "нөл"},
		{1, "бір"},
		{2, "екі"},
		{4, "төрт"},
		{5, "бес"},
		{11, "он бір"},
		{21, "жиырма бір"},
		{40, "қырық"},
		{100, "жүз"},
		{245, "екі жүз қырық бес"},
		{1000, "бір мың"},
		{150000, "жүз елу мың"},
		{1000000, "бір миллион"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ToWords(tc.n, LangKk), "n=%d", tc.n)
	}
}

func TestToWords_NegativeDegradesToEmpty(t *testing.T) {
	assert.Equal(t, "", ToWords(-1, LangRu))
	assert.Equal(t, "", ToWords(-100, LangKk))
}

func TestToWords_BeyondBillionsDegradesToEmpty(t *testing.T) {
	// Последнее значение в пределах поддерживаемых разрядов.
	assert.Equal(t,
		"девятьсот девяносто девять миллиардов девятьсот девяносто девять миллионов "+
			"девятьсот девяносто девять тысяч девятьсот девяносто девять",
		ToWords(999_999_999_999, LangRu))
	assert.Equal(t, "бір миллиард", ToWords(1_000_000_000, LangKk))

	// За пределами разрядов словесная форма деградирует, а не паникует.
	assert.Equal(t, "", ToWords(1_000_000_000_000, LangRu))
	assert.Equal(t, "", ToWords(1_000_000_000_000, LangKk))
	assert.Equal(t, "", ToWords(1<<62, LangRu))
}

func TestMonthDeclension(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "месяц"},
		{2, "месяца"},
		{3, "месяца"},
		{4, "месяца"},
		{5, "месяцев"},
		{11, "месяцев"},
		{12, "месяцев"},
		{14, "месяцев"},
		{21, "месяц"},
		{22, "месяца"},
		{111, "месяцев"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MonthDeclension(tc.n, LangRu), "n=%d", tc.n)
	}

	// В казахском форма не меняется.
	assert.Equal(t, "ай", MonthDeclension(1, LangKk))
	assert.Equal(t, "ай", MonthDeclension(11, LangKk))
}

func TestHourAndDayDeclension(t *testing.T) {
	assert.Equal(t, "час", HourDeclension(1))
	assert.Equal(t, "часа", HourDeclension(24))
	assert.Equal(t, "часов", HourDeclension(40))
	assert.Equal(t, "часов", HourDeclension(8))

	assert.Equal(t, "день", DayDeclension(1))
	assert.Equal(t, "дня", DayDeclension(2))
	assert.Equal(t, "дней", DayDeclension(5))
}

func TestGenitiveJobTitle(t *testing.T) {
	assert.Equal(t, "Генерального директора", GenitiveJobTitle("Генеральный директор"))
	assert.Equal(t, "директора", GenitiveJobTitle("директор"))
	assert.Equal(t, "Председателя правления", GenitiveJobTitle("Председатель правления"))

	// Нетиповая должность возвращается как есть.
	assert.Equal(t, "Инженер-технолог", GenitiveJobTitle("Инженер-технолог"))
	assert.Equal(t, "", GenitiveJobTitle(""))
}
