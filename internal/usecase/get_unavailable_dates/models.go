package get_unavailable_dates

// Request модель запроса недоступных дат месяца
type Request struct {
	Year  int // Четырехзначный год
	Month int // 1..12
}

// Response модель ответа со списком недоступных дат
type Response struct {
	Year  int
	Month int
	Dates []string // YYYY-MM-DD по возрастанию
}
