// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package service

import "fmt"

// MessagingPattern selects how participants of a service exchange data.
type MessagingPattern uint8

const (
	// PublishSubscribe services move typed samples from publishers to
	// subscribers through shared-memory segments.
	PublishSubscribe MessagingPattern = iota + 1

	// Event services carry bare event ids from notifiers to listeners.
	Event
)

func (p MessagingPattern) String() string {
	switch p {
	case PublishSubscribe:
		return "publish_subscribe"
	case Event:
		return "event"
	default:
		return fmt.Sprintf("MessagingPattern(%d)", uint8(p))
	}
}

// ParseMessagingPattern is the inverse of String.
func ParseMessagingPattern(text string) (MessagingPattern, error) {
	switch text {
	case "publish_subscribe":
		return PublishSubscribe, nil
	case "event":
		return Event, nil
	default:
		return 0, fmt.Errorf("unknown messaging pattern %q", text)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p MessagingPattern) MarshalText() ([]byte, error) {
	if p != PublishSubscribe && p != Event {
		return nil, fmt.Errorf("cannot marshal %s", p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *MessagingPattern) UnmarshalText(data []byte) error {
	parsed, err := ParseMessagingPattern(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
