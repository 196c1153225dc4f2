package cli

import (
	"bytes"
	"strings"
	"testing"

	"social-store/internal/models"
	"social-store/internal/storage"

	"github.com/stretchr/testify/assert"
)

func newTestCLI() (*CLI, *storage.MockStore, *bytes.Buffer) {
	store := new(storage.MockStore)
	out := &bytes.Buffer{}
	return New(store, out), store, out
}

func TestExecute_Register(t *testing.T) {
	c, store, out := newTestCLI()
	store.On("Register", "alice", "pw1").Return(true)

	cont := c.Execute("register alice pw1")

	assert.True(t, cont)
	assert.Equal(t, "ok\n", out.String())
	store.AssertExpectations(t)
}

func TestExecute_LoginFailure(t *testing.T) {
	c, store, out := newTestCLI()
	store.On("Login", "alice", "wrong").Return(false)

	c.Execute("login alice wrong")

	assert.Equal(t, "failed\n", out.String())
	store.AssertExpectations(t)
}

func TestExecute_PostJoinsContent(t *testing.T) {
	c, store, _ := newTestCLI()
	store.On("CreatePost", "hello world").Return(true)

	c.Execute("post hello world")

	store.AssertExpectations(t)
}

func TestExecute_FeedUsesSummary(t *testing.T) {
	c, store, out := newTestCLI()
	p := models.Post{PostID: "P100", AuthorUsername: "bob", Content: "hi"}
	store.On("GetFeedPosts").Return([]models.Post{p})
	store.On("PostSummary", p).Return("P100 | bob\nhi\nLikes: 0")

	c.Execute("feed")

	assert.Contains(t, out.String(), "P100 | bob")
	store.AssertExpectations(t)
}

func TestExecute_UsageOnMissingArgs(t *testing.T) {
	c, store, out := newTestCLI()

	c.Execute("like")

	// Хранилище не вызывается при неполной команде
	assert.Contains(t, out.String(), "usage:")
	store.AssertNotCalled(t, "ToggleLike")
}

func TestExecute_UnknownCommand(t *testing.T) {
	c, _, out := newTestCLI()

	c.Execute("frobnicate")

	assert.Contains(t, out.String(), "unknown command")
}

func TestExecute_Quit(t *testing.T) {
	c, _, _ := newTestCLI()

	assert.False(t, c.Execute("quit"))
	assert.True(t, c.Execute(""))
}

func TestRun_StopsOnQuit(t *testing.T) {
	c, store, out := newTestCLI()
	store.On("CurrentUsername").Return("")
	store.On("Register", "alice", "pw1").Return(true)

	c.Run(strings.NewReader("register alice pw1\nquit\n"))

	assert.Contains(t, out.String(), "ok")
	store.AssertExpectations(t)
}
