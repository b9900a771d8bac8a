// Package flash implements one-shot messages carried in the session and
// drained on the next rendered page.
package flash

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionKey = "flash_messages"

const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelInfo    = "info"
)

type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Add appends a message to the session queue. The caller is responsible for
// saving the session afterwards.
func Add(sess *session.Session, level, text string) {
	msgs := decode(sess)
	msgs = append(msgs, Message{Level: level, Text: text})
	encoded, err := json.Marshal(msgs)
	if err != nil {
		log.Printf("Failed to encode flash messages: %v", err)
		return
	}
	sess.Set(sessionKey, string(encoded))
}

func Success(sess *session.Session, text string) { Add(sess, LevelSuccess, text) }
func Error(sess *session.Session, text string)   { Add(sess, LevelError, text) }
func Info(sess *session.Session, text string)    { Add(sess, LevelInfo, text) }

// Take returns all queued messages and clears the queue.
func Take(sess *session.Session) []Message {
	msgs := decode(sess)
	if len(msgs) > 0 {
		sess.Delete(sessionKey)
	}
	return msgs
}

func decode(sess *session.Session) []Message {
	raw, ok := sess.Get(sessionKey).(string)
	if !ok || raw == "" {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		log.Printf("Failed to decode flash messages: %v", err)
		return nil
	}
	return msgs
}
