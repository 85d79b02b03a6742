package numerals

import "strings"

// Родительный падеж типовых должностей для преамбул договоров
// («... в лице Генерального директора, действующего на основании устава»).
// Набор закрытый: нетиповая должность возвращается без изменений.
var genitiveTitles = map[string]string{
	"директор":               "директора",
	"генеральный директор":   "генерального директора",
	"исполнительный директор": "исполнительного директора",
	"управляющий директор":   "управляющего директора",
	"председатель правления": "председателя правления",
	"президент":              "президента",
	"руководитель":           "руководителя",
	"начальник отдела кадров": "начальника отдела кадров",
	"менеджер по персоналу":  "менеджера по персоналу",
	"главный бухгалтер":      "главного бухгалтера",
}

// GenitiveJobTitle возвращает русское название должности в родительном падеже.
// Регистр первой буквы исходной строки сохраняется.
func GenitiveJobTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return title
	}

	gen, ok := genitiveTitles[strings.ToLower(trimmed)]
	if !ok {
		return title
	}

	if isUpperFirst(trimmed) {
		return upperFirst(gen)
	}
	return gen
}

func isUpperFirst(s string) bool {
	runes := []rune(s)
	return len(runes) > 0 && strings.ToUpper(string(runes[0])) == string(runes[0])
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
