package flash

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/valyala/fasthttp"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()

	app := fiber.New()
	store := session.New()
	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	t.Cleanup(func() { app.ReleaseCtx(ctx) })

	sess, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("store.Get: %v", err)
	}
	return sess
}

func TestTakeDrainsQueue(t *testing.T) {
	sess := newTestSession(t)

	Success(sess, "created")
	Error(sess, "broken")

	msgs := Take(sess)
	if len(msgs) != 2 {
		t.Fatalf("Take returned %d messages, want 2", len(msgs))
	}
	if msgs[0].Level != LevelSuccess || msgs[0].Text != "created" {
		t.Errorf("first message = %+v", msgs[0])
	}
	if msgs[1].Level != LevelError || msgs[1].Text != "broken" {
		t.Errorf("second message = %+v", msgs[1])
	}

	// One-shot semantics: a second read sees nothing.
	if again := Take(sess); len(again) != 0 {
		t.Errorf("second Take returned %d messages, want 0", len(again))
	}
}

func TestTakeOnEmptySession(t *testing.T) {
	sess := newTestSession(t)
	if msgs := Take(sess); len(msgs) != 0 {
		t.Errorf("Take on empty session returned %d messages", len(msgs))
	}
}
