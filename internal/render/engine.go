package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/adilkhanov/hrdoc-backend/internal/models"
	"github.com/adilkhanov/hrdoc-backend/internal/numerals"
)

// FallbackMarker подставляется вместо значения, которое не удалось
// вычислить. Частично незаполненный документ должен отображаться
// с видимыми пропусками, а не падать.
const FallbackMarker = "_____________"

// Синтаксис плейсхолдера — контракт с авторами шаблонов, менять нельзя.
var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

var monthsGenRu = [12]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

var monthsKk = [12]string{
	"қаңтар", "ақпан", "наурыз", "сәуір", "мамыр", "маусым",
	"шілде", "тамыз", "қыркүйек", "қазан", "қараша", "желтоқсан",
}

// Render подставляет значения из снимка договора в шаблон пункта.
// Замена выполняется за один проход по исходному шаблону: значения данных,
// содержащие "{{...}}", повторно не обрабатываются, поэтому результат
// детерминирован для одинаковой тройки (шаблон, снимок, язык).
// Неизвестный или невычислимый токен превращается в FallbackMarker.
func Render(template string, snap *models.ContractSnapshot, lang numerals.Lang) string {
	return tokenPattern.ReplaceAllStringFunc(template, func(match string) string {
		token := match[2 : len(match)-2]
		return resolveToken(token, snap, lang)
	})
}

func resolveToken(token string, snap *models.ContractSnapshot, lang numerals.Lang) string {
	if snap == nil {
		return FallbackMarker
	}

	if value, ok := specialToken(token, snap); ok {
		return value
	}
	if value, ok := snapshotField(token, snap); ok {
		return value
	}
	return FallbackMarker
}

// specialToken разрешает токены, требующие вычисления, а не прямой подстановки.
func specialToken(token string, snap *models.ContractSnapshot) (string, bool) {
	switch token {
	case "start_date_ru":
		return formatDate(snap.StartDate, numerals.LangRu), true
	case "start_date_kk":
		return formatDate(snap.StartDate, numerals.LangKk), true
	case "end_date_ru":
		return formatDate(contractEndDate(snap.StartDate), numerals.LangRu), true
	case "end_date_kk":
		return formatDate(contractEndDate(snap.StartDate), numerals.LangKk), true

	case "job_position_ru":
		return nonEmptyOrFallback(snap.JobPositionRu), true
	case "job_position_kk":
		return nonEmptyOrFallback(snap.JobPositionKk), true
	case "job_position_gent_ru":
		return nonEmptyOrFallback(numerals.GenitiveJobTitle(snap.JobPositionRu)), true

	case "job_description_list_ru":
		return dutiesList(snap.JobDutiesRu), true
	case "job_description_list_kk":
		return dutiesList(snap.JobDutiesKk), true

	case "trial_period_ru":
		return trialPeriodPhrase(snap, numerals.LangRu), true
	case "trial_period_kk":
		return trialPeriodPhrase(snap, numerals.LangKk), true

	case "work_schedule_ru":
		return scheduleToken(snap, numerals.LangRu), true
	case "work_schedule_kk":
		return scheduleToken(snap, numerals.LangKk), true

	case "salary_amount":
		if snap.SalaryAmount == nil {
			return FallbackMarker, true
		}
		return strconv.FormatInt(*snap.SalaryAmount, 10), true
	case "salary_amount_text_ru":
		return salaryWords(snap.SalaryAmount, numerals.LangRu), true
	case "salary_amount_text_kk":
		return salaryWords(snap.SalaryAmount, numerals.LangKk), true

	case "work_place_ru":
		return workPlace(snap, numerals.LangRu), true
	case "work_place_kk":
		return workPlace(snap, numerals.LangKk), true
	case "work_address_ru":
		return nonEmptyOrFallback(workAddress(snap, numerals.LangRu)), true
	case "work_address_kk":
		return nonEmptyOrFallback(workAddress(snap, numerals.LangKk)), true
	}

	return "", false
}

// snapshotField разрешает токен как прямое поле снимка договора.
func snapshotField(token string, snap *models.ContractSnapshot) (string, bool) {
	var value string
	switch token {
	case "contract_number":
		value = snap.ContractNumber
	case "worker_name_ru":
		value = snap.WorkerNameRu
	case "worker_name_kk":
		value = snap.WorkerNameKk
	case "employer_name_ru":
		value = snap.EmployerNameRu
	case "employer_name_kk":
		value = snap.EmployerNameKk
	case "city_ru":
		value = snap.CityRu
	case "city_kk":
		value = snap.CityKk
	case "work_start":
		value = snap.WorkStart
	case "work_end":
		value = snap.WorkEnd
	case "break_start":
		value = snap.BreakStart
	case "break_end":
		value = snap.BreakEnd
	default:
		return "", false
	}

	if value == "" {
		return FallbackMarker, true
	}
	return value, true
}

// formatDate форматирует дату в юридическом стиле каждого языка:
// ru «15» января 2026 года, kk 2026 жылғы 15 қаңтар.
func formatDate(t *time.Time, lang numerals.Lang) string {
	if t == nil {
		return FallbackMarker
	}
	if lang == numerals.LangKk {
		return fmt.Sprintf("%d жылғы %d %s", t.Year(), t.Day(), monthsKk[t.Month()-1])
	}
	return fmt.Sprintf("«%02d» %s %d года", t.Day(), monthsGenRu[t.Month()-1], t.Year())
}

// contractEndDate — срок договора: год с даты начала.
func contractEndDate(start *time.Time) *time.Time {
	if start == nil {
		return nil
	}
	end := start.AddDate(1, 0, 0)
	return &end
}

// dutiesList оформляет обязанности маркированным списком через точку с запятой.
func dutiesList(duties []string) string {
	var filled []string
	for _, d := range duties {
		if strings.TrimSpace(d) != "" {
			filled = append(filled, strings.TrimSpace(d))
		}
	}
	if len(filled) == 0 {
		return FallbackMarker
	}
	return "– " + strings.Join(filled, ";\n– ")
}

// trialPeriodPhrase строит фразу об испытательном сроке. Без испытательного
// срока фраза пустая; с заданной длительностью добавляется число, словесная
// форма и согласованное слово «месяц».
func trialPeriodPhrase(snap *models.ContractSnapshot, lang numerals.Lang) string {
	if !snap.TrialPeriod {
		return ""
	}

	if snap.TrialDurationMonths == nil {
		if lang == numerals.LangKk {
			return "сынақ мерзімімен"
		}
		return "с испытательным сроком"
	}

	n := int64(*snap.TrialDurationMonths)
	if lang == numerals.LangKk {
		return fmt.Sprintf("%d (%s) ай сынақ мерзімімен", n, numerals.ToWords(n, numerals.LangKk))
	}
	return fmt.Sprintf("с испытательным сроком %d (%s) %s",
		n, numerals.ToWords(n, numerals.LangRu), numerals.MonthDeclension(n, numerals.LangRu))
}

func scheduleToken(snap *models.ContractSnapshot, lang numerals.Lang) string {
	schedule, err := BuildSchedule(snap.WorkStart, snap.WorkEnd, snap.BreakStart, snap.BreakEnd, snap.WorkingDays)
	if err != nil {
		return FallbackMarker
	}
	return ScheduleText(schedule, lang)
}

func salaryWords(amount *int64, lang numerals.Lang) string {
	if amount == nil || *amount < 0 {
		return FallbackMarker
	}
	words := numerals.ToWords(*amount, lang)
	if words == "" {
		return FallbackMarker
	}
	return words
}

// workAddress выбирает адрес места работы: при дистанционной работе — адрес
// работника, иначе — адрес организации.
func workAddress(snap *models.ContractSnapshot, lang numerals.Lang) string {
	if snap.IsOnline {
		if lang == numerals.LangKk {
			return snap.WorkerAddressKk
		}
		return snap.WorkerAddressRu
	}
	if lang == numerals.LangKk {
		return snap.EmployerAddressKk
	}
	return snap.EmployerAddressRu
}

// workPlace — адрес с городом для пункта о месте выполнения работы.
func workPlace(snap *models.ContractSnapshot, lang numerals.Lang) string {
	address := workAddress(snap, lang)
	if lang == numerals.LangKk {
		if snap.CityKk == "" || address == "" {
			return FallbackMarker
		}
		return fmt.Sprintf("%s қаласы, %s", snap.CityKk, address)
	}
	if snap.CityRu == "" || address == "" {
		return FallbackMarker
	}
	return fmt.Sprintf("г. %s, %s", snap.CityRu, address)
}

func nonEmptyOrFallback(v string) string {
	if strings.TrimSpace(v) == "" {
		return FallbackMarker
	}
	return v
}
