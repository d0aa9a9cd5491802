package constants

// Обменник и ключи маршрутизации доменных событий.
const (
	EventsExchange     = "moonhem_events"
	EventsExchangeType = "topic"

	// Ключи совпадают с типами событий: "listing.created", "listing.price_changed" и т.д.
	// Подписчики могут использовать шаблоны вида "listing.*".
	RoutingKeyMessageCreated = "message.created"
)

// Заголовки публикуемых сообщений.
const (
	HeaderEventType    = "event-type"
	HeaderEventVersion = "event-version"
	HeaderTraceID      = "x-trace-id"
)
