package errorx

import (
	"fmt"
)

const errNotifyPrefix = "NOTIFY-ERR"

type errNotifyCode int

type errNotify struct {
	code errNotifyCode
}

func (err errNotify) Error() string {
	return fmt.Sprintf("%d", err.code)
}

func (err errNotify) Code() string {
	return errNotifyPrefix + "-" + fmt.Sprintf("%d", err.code)
}

func (err errNotify) CustomError() CustomError {
	return CustomError{
		Prefix: errNotifyPrefix,
		Code:   int(err.code),
	}
}

const (
	// --- NOTIFY-ERR-xxx: report delivery ---
	invalidRecipient errNotifyCode = iota + 1
	chatDeliveryFailed
	missingScreenshot
	assetStorageFailed
	relayDeliveryFailed
)

var (
	// recipient config is not decodable or recipient type is not served
	ErrInvalidRecipient = errNotify{code: invalidRecipient}
	// slack api rejected or failed the message
	ErrChatDeliveryFailed = errNotify{code: chatDeliveryFailed}
	// webhook relays need an image to attach
	ErrMissingScreenshot = errNotify{code: missingScreenshot}
	// upload or presign of the screenshot failed
	ErrAssetStorageFailed = errNotify{code: assetStorageFailed}
	// relay kept answering with a non-200 status
	ErrRelayDeliveryFailed = errNotify{code: relayDeliveryFailed}
)

var errNotifyMap = map[errNotifyCode]errNotify{
	invalidRecipient:    ErrInvalidRecipient,
	chatDeliveryFailed:  ErrChatDeliveryFailed,
	missingScreenshot:   ErrMissingScreenshot,
	assetStorageFailed:  ErrAssetStorageFailed,
	relayDeliveryFailed: ErrRelayDeliveryFailed,
}

func newNotifyError(code errNotifyCode, err error, ctx context) error {
	customErr := CustomError{
		Prefix:  errNotifyPrefix,
		Code:    int(code),
		Context: ctx,
	}
	if err == nil {
		return customErr
	}
	return fmt.Errorf("%w, %w", err, customErr)
}

func InvalidRecipient(err error, ctx context) error {
	return newNotifyError(invalidRecipient, err, ctx)
}

func ChatDeliveryFailed(err error, ctx context) error {
	return newNotifyError(chatDeliveryFailed, err, ctx)
}

func MissingScreenshot(ctx context) error {
	return newNotifyError(missingScreenshot, nil, ctx)
}

func AssetStorageFailed(err error, ctx context) error {
	return newNotifyError(assetStorageFailed, err, ctx)
}

func RelayDeliveryFailed(err error, ctx context) error {
	return newNotifyError(relayDeliveryFailed, err, ctx)
}
