package event

import (
	"strconv"

	"github.com/ecodeclub/mq-api"
	"github.com/labelhub/labelhub/internal/pkg/mqx"
)

type ConfirmationEventProducer mqx.Producer[ConfirmedEvent]

// NewConfirmationEventProducer 以样本为 key，同一条样本的事件有序
func NewConfirmationEventProducer(q mq.MQ) (ConfirmationEventProducer, error) {
	return mqx.NewKeyedProducer(q, ConfirmationTopic, func(evt ConfirmedEvent) string {
		return strconv.FormatInt(evt.ExampleID, 10)
	})
}
