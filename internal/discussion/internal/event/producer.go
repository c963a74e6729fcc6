package event

import (
	"strconv"

	"github.com/ecodeclub/mq-api"
	"github.com/labelhub/labelhub/internal/pkg/mqx"
)

type CommentEventProducer mqx.Producer[CommentEvent]

// NewCommentEventProducer 以讨论为 key，同一个讨论的评论有序
func NewCommentEventProducer(q mq.MQ) (CommentEventProducer, error) {
	return mqx.NewKeyedProducer(q, CommentTopic, func(evt CommentEvent) string {
		return strconv.FormatInt(evt.DiscussionID, 10)
	})
}
