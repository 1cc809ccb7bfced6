package logattr

import "log/slog"

func ServiceName(serviceName string) slog.Attr {
	return slog.String("service_name", serviceName)
}

func Component(component string) slog.Attr {
	return slog.String("component", component)
}

func BookId(bookId string) slog.Attr {
	return slog.String("book_id", bookId)
}

func EventType(eventType string) slog.Attr {
	return slog.String("event_type", eventType)
}

func CommandType(commandType string) slog.Attr {
	return slog.String("command_type", commandType)
}

func CorrelationId(correlationId string) slog.Attr {
	return slog.String("correlation_id", correlationId)
}

func Error(err string) slog.Attr {
	return slog.String("error", err)
}
