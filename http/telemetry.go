package http

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const name = "github.com/freekieb7/pebble/http"

var (
	logger = otelslog.NewLogger(name)
	meter  = otel.Meter(name)

	dispatchCnt metric.Int64Counter
	notFoundCnt metric.Int64Counter
	failureCnt  metric.Int64Counter
)

func init() {
	var err error
	dispatchCnt, err = meter.Int64Counter("pebble.dispatch.count",
		metric.WithDescription("The number of dispatched requests"),
		metric.WithUnit("{request}"))
	if err != nil {
		panic(err)
	}

	notFoundCnt, err = meter.Int64Counter("pebble.dispatch.not_found",
		metric.WithDescription("The number of requests that matched no route"),
		metric.WithUnit("{request}"))
	if err != nil {
		panic(err)
	}

	failureCnt, err = meter.Int64Counter("pebble.dispatch.failures",
		metric.WithDescription("The number of handler errors and panics"),
		metric.WithUnit("{request}"))
	if err != nil {
		panic(err)
	}
}
