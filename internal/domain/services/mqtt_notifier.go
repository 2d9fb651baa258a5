package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"room-manager/internal/infrastructure/config"
	"room-manager/pkg/logger"
)

// MQTTIncidentNotifier publishes incident status changes as JSON to
// <prefix>/incidents/<id>/status.
type MQTTIncidentNotifier struct {
	Client      mqtt.Client
	TopicPrefix string
	QoS         byte
	Retained    bool
	Timeout     time.Duration
}

// NewIncidentNotifier returns an MQTT notifier, or a no-op one when no broker is configured.
// A broker that is down at startup is retried in the background.
func NewIncidentNotifier(cfg *config.Config) IncidentNotifier {
	if cfg.MQTTBrokerURL == "" {
		return NopIncidentNotifier{}
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTBrokerURL)
	// 使用唯一的客户端ID，避免同一服务多实例冲突
	opts.SetClientID(fmt.Sprintf("%s-%s", cfg.MQTTClientID, uuid.New().String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetCleanSession(true)
	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warning("[MQTT] 连接丢失: %v", err)
	})
	opts.SetOnConnectHandler(func(_ mqtt.Client) {
		logger.Info("[MQTT] 成功连接到 %s", cfg.MQTTBrokerURL)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.WaitTimeout(5*time.Second) && token.Error() != nil {
		logger.Warning("[MQTT] 连接失败: %v", token.Error())
	}

	return &MQTTIncidentNotifier{
		Client:      client,
		TopicPrefix: cfg.MQTTTopicPrefix,
		QoS:         byte(cfg.MQTTQoS),
		Retained:    cfg.MQTTRetained,
		Timeout:     3 * time.Second,
	}
}

// Topic returns the topic a status change of incidentID is published to.
func (n *MQTTIncidentNotifier) Topic(incidentID string) string {
	return fmt.Sprintf("%s/incidents/%s/status", n.TopicPrefix, incidentID)
}

// PublishStatusChange implements IncidentNotifier.
func (n *MQTTIncidentNotifier) PublishStatusChange(ctx context.Context, event IncidentStatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("序列化消息失败: %w", err)
	}

	token := n.Client.Publish(n.Topic(event.IncidentID), n.QoS, n.Retained, payload)
	select {
	case <-token.Done():
	case <-time.After(n.Timeout):
		return fmt.Errorf("发布消息超时")
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}
	return nil
}

// Close disconnects from the broker
func (n *MQTTIncidentNotifier) Close() {
	n.Client.Disconnect(250)
}
