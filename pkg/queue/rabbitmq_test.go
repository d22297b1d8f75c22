package queue

import (
	"encoding/json"
	"testing"

	"video-hive/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	cfg := &config.Config{
		RabbitMQUser:     "guest",
		RabbitMQPassword: "secret",
		RabbitMQHost:     "mq",
		RabbitMQPort:     "5672",
	}
	assert.Equal(t, "amqp://guest:secret@mq:5672/", URL(cfg))
}

func TestNewEvent_JSON(t *testing.T) {
	ev := NewEvent(EventContentLiked, map[string]interface{}{"kind": "video", "targetId": "v1"})

	body, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "content_liked", decoded["type"])
	assert.Equal(t, "v1", decoded["payload"].(map[string]interface{})["targetId"])
	assert.NotEmpty(t, decoded["occurredAt"])
}
