package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/adilkhanov/hrdoc-backend/internal/models"
	"github.com/adilkhanov/hrdoc-backend/internal/numerals"
)

// ErrUnsupportedSchedule возвращается для графика, по которому нельзя
// построить корректную формулировку. Вызывающая сторона подставляет маркер
// незаполненного поля, а не прерывает рендеринг.
var ErrUnsupportedSchedule = errors.New("render: unsupported work schedule shape")

// Schedule производные характеристики графика работы. Вычисляются из
// ContractSnapshot на каждый рендер и нигде не кэшируются.
type Schedule struct {
	WorkStart  string
	WorkEnd    string
	BreakStart string
	BreakEnd   string
	HasBreak   bool

	DayHours    int64
	TotalHours  int64
	WorkingDays []models.Weekday
	DaysOff     []models.Weekday
}

var dayNamesRu = map[models.Weekday]string{
	models.Monday:    "понедельник",
	models.Tuesday:   "вторник",
	models.Wednesday: "среда",
	models.Thursday:  "четверг",
	models.Friday:    "пятница",
	models.Saturday:  "суббота",
	models.Sunday:    "воскресенье",
}

var dayNamesKk = map[models.Weekday]string{
	models.Monday:    "дүйсенбі",
	models.Tuesday:   "сейсенбі",
	models.Wednesday: "сәрсенбі",
	models.Thursday:  "бейсенбі",
	models.Friday:    "жұма",
	models.Saturday:  "сенбі",
	models.Sunday:    "жексенбі",
}

// BuildSchedule проверяет сырые поля графика и вычисляет производные
// значения. Поддерживаются только 4- и 8-часовые рабочие дни и рабочая
// неделя от 1 до 6 дней; всё остальное — неподдерживаемая форма графика.
func BuildSchedule(workStart, workEnd, breakStart, breakEnd string, workingDays []models.Weekday) (*Schedule, error) {
	startMin, err := parseClock(workStart)
	if err != nil {
		return nil, ErrUnsupportedSchedule
	}
	endMin, err := parseClock(workEnd)
	if err != nil {
		return nil, ErrUnsupportedSchedule
	}

	workMinutes := endMin - startMin

	breakMinutes := int64(0)
	hasBreak := breakStart != "" && breakEnd != ""
	if hasBreak {
		bs, err := parseClock(breakStart)
		if err != nil {
			return nil, ErrUnsupportedSchedule
		}
		be, err := parseClock(breakEnd)
		if err != nil {
			return nil, ErrUnsupportedSchedule
		}
		breakMinutes = be - bs
	}

	dayMinutes := workMinutes - breakMinutes
	if dayMinutes <= 0 || dayMinutes%60 != 0 {
		return nil, ErrUnsupportedSchedule
	}

	dayHours := dayMinutes / 60
	if dayHours != 4 && dayHours != 8 {
		return nil, ErrUnsupportedSchedule
	}

	days := normalizeDays(workingDays)
	if len(days) < 1 || len(days) > 6 {
		return nil, ErrUnsupportedSchedule
	}

	return &Schedule{
		WorkStart:   workStart,
		WorkEnd:     workEnd,
		BreakStart:  breakStart,
		BreakEnd:    breakEnd,
		HasBreak:    hasBreak,
		DayHours:    dayHours,
		TotalHours:  dayHours * int64(len(days)),
		WorkingDays: days,
		DaysOff:     daysOff(days),
	}, nil
}

// ScheduleText строит итоговое предложение о режиме работы. Русская и
// казахская формулировки написаны отдельно: у каждой свой порядок слов и
// свои правила соединения названий дней.
func ScheduleText(s *Schedule, lang numerals.Lang) string {
	if lang == numerals.LangKk {
		return scheduleTextKk(s)
	}
	return scheduleTextRu(s)
}

func scheduleTextRu(s *Schedule) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Продолжительность рабочей недели составляет %d (%s) %s: %d (%s) %s по %d (%s) %s с %s до %s",
		s.TotalHours, numerals.ToWords(s.TotalHours, numerals.LangRu), numerals.HourDeclension(s.TotalHours),
		len(s.WorkingDays), numerals.ToWords(int64(len(s.WorkingDays)), numerals.LangRu), workingDaysPhraseRu(int64(len(s.WorkingDays))),
		s.DayHours, numerals.ToWords(s.DayHours, numerals.LangRu), numerals.HourDeclension(s.DayHours),
		s.WorkStart, s.WorkEnd)

	if s.HasBreak {
		fmt.Fprintf(&b, ", с перерывом на обед с %s до %s", s.BreakStart, s.BreakEnd)
	}

	offCount := int64(len(s.DaysOff))
	offNames := joinDays(s.DaysOff, dayNamesRu, " и ")
	if offCount == 1 {
		fmt.Fprintf(&b, ", с 1 (один) выходным днём – %s.", offNames)
	} else {
		fmt.Fprintf(&b, ", с %d (%s) выходными днями – %s.",
			offCount, numerals.ToWords(offCount, numerals.LangRu), offNames)
	}

	return b.String()
}

func scheduleTextKk(s *Schedule) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Жұмыс аптасының ұзақтығы аптасына %d (%s) сағатты құрайды: сағат %s-ден %s-ге дейін күніне %d (%s) сағаттан %d (%s) жұмыс күні",
		s.TotalHours, numerals.ToWords(s.TotalHours, numerals.LangKk),
		s.WorkStart, s.WorkEnd,
		s.DayHours, numerals.ToWords(s.DayHours, numerals.LangKk),
		len(s.WorkingDays), numerals.ToWords(int64(len(s.WorkingDays)), numerals.LangKk))

	if s.HasBreak {
		fmt.Fprintf(&b, ", түскі үзіліс %s-ден %s-ге дейін", s.BreakStart, s.BreakEnd)
	}

	fmt.Fprintf(&b, ", демалыс күндері – %s.", joinDays(s.DaysOff, dayNamesKk, " және "))

	return b.String()
}

// workingDaysPhraseRu согласует «рабочий день» с числом дней.
func workingDaysPhraseRu(n int64) string {
	day := numerals.DayDeclension(n)
	if day == "день" {
		return "рабочий день"
	}
	return "рабочих " + day
}

// joinDays соединяет названия дней запятыми с языковым союзом перед последним.
func joinDays(days []models.Weekday, names map[models.Weekday]string, conj string) string {
	if len(days) == 0 {
		return ""
	}

	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, names[d])
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + conj + parts[len(parts)-1]
}

// normalizeDays убирает дубликаты и невалидные значения, сохраняя порядок Пн..Вс.
func normalizeDays(days []models.Weekday) []models.Weekday {
	present := make(map[models.Weekday]struct{}, len(days))
	for _, d := range days {
		present[d] = struct{}{}
	}

	var ordered []models.Weekday
	for _, d := range models.AllWeekdays {
		if _, ok := present[d]; ok {
			ordered = append(ordered, d)
		}
	}
	return ordered
}

func daysOff(working []models.Weekday) []models.Weekday {
	isWorking := make(map[models.Weekday]struct{}, len(working))
	for _, d := range working {
		isWorking[d] = struct{}{}
	}

	var off []models.Weekday
	for _, d := range models.AllWeekdays {
		if _, ok := isWorking[d]; !ok {
			off = append(off, d)
		}
	}
	return off
}

// parseClock разбирает время "HH:MM" в минуты от полуночи.
func parseClock(v string) (int64, error) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("render: некорректное время %q", v)
	}

	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("render: некорректные часы в %q", v)
	}

	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("render: некорректные минуты в %q", v)
	}

	return hours*60 + minutes, nil
}
