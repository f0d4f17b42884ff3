package factory

import (
	"fmt"
	"log/slog"

	"opencsg.com/report-notifier/common/config"
	"opencsg.com/report-notifier/notification/notifychannel"
)

type Factory interface {
	GetChannel(name string) (notifychannel.Notifier, error)
	RegisterChannel(name string, channel notifychannel.Notifier)
}

type factoryImpl struct {
	channels map[string]notifychannel.Notifier
}

func NewFactory(config *config.Config) (Factory, error) {
	factory := NewEmptyFactory()

	// initialize channels, and register them
	if err := registerChannels(config, factory); err != nil {
		return nil, err
	}
	return factory, nil
}

// NewEmptyFactory returns a factory without any channel registered.
func NewEmptyFactory() Factory {
	return &factoryImpl{
		channels: make(map[string]notifychannel.Notifier),
	}
}

func (f *factoryImpl) GetChannel(name string) (notifychannel.Notifier, error) {
	channel, ok := f.channels[name]
	if !ok {
		return nil, fmt.Errorf("channel %s not registered", name)
	}
	return channel, nil
}

func (f *factoryImpl) RegisterChannel(name string, channel notifychannel.Notifier) {
	slog.Info("register notify channel successfully", "channel", name)
	f.channels[name] = channel
}
