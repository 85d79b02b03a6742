package numerals

// pluralRu выбирает русскую форму существительного по числу:
// 1 месяц, 2 месяца, 5 месяцев; числа 11–14 всегда получают форму «много».
func pluralRu(n int64, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	if rem := n % 100; rem >= 11 && rem <= 14 {
		return many
	}
	switch n % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	default:
		return many
	}
}

// MonthDeclension возвращает слово «месяц» в форме, согласованной с числом.
// В казахском склонения по числу нет: всегда «ай».
func MonthDeclension(n int64, lang Lang) string {
	if lang == LangKk {
		return "ай"
	}
	return pluralRu(n, "месяц", "месяца", "месяцев")
}

// HourDeclension согласует слово «час» с числом (русский текст графика работы).
func HourDeclension(n int64) string {
	return pluralRu(n, "час", "часа", "часов")
}

// DayDeclension согласует слово «день».
func DayDeclension(n int64) string {
	return pluralRu(n, "день", "дня", "дней")
}
