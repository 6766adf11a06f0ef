package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

const CtxLoggerKey = "logger" // *slog.Logger

// リクエストごとにrequest_id付きのloggerをcontextへ入れて、
// 終わったらmethod/path/status/latencyを1行出す。
// RequestIDミドルウェアの後に置くこと
func RequestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			res := c.Response()

			reqID := res.Header().Get(echo.HeaderXRequestID)
			if reqID == "" {
				reqID = req.Header.Get(echo.HeaderXRequestID)
			}
			l := log.With(slog.String("request_id", reqID))
			c.Set(CtxLoggerKey, l)

			err := next(c)
			if err != nil {
				//echoのエラーハンドラでレスポンスを確定させる
				c.Error(err)
			}

			attrs := []any{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", res.Status),
				slog.Duration("latency", time.Since(start)),
			}
			if q := req.URL.RawQuery; q != "" {
				attrs = append(attrs, slog.String("query", q))
			}
			switch {
			case res.Status >= 500:
				l.Error("request completed", attrs...)
			case res.Status >= 400:
				l.Warn("request completed", attrs...)
			default:
				l.Info("request completed", attrs...)
			}
			return nil
		}
	}
}

// LoggerFrom はcontextのloggerを返す。無ければfallback
func LoggerFrom(c echo.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := c.Get(CtxLoggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return fallback
}
