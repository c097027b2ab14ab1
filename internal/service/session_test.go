package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiaot623/gogo/concierge/internal/domain"
)

func TestCreateSession(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()
	before := time.Now()

	first, err := svc.CreateSession(ctx, "  Ana  ")
	require.NoError(t, err)
	second, err := svc.CreateSession(ctx, "Ana")
	require.NoError(t, err)

	assert.Equal(t, "Ana", first.Name)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.Before(before.Truncate(time.Microsecond)))
}

func TestCreateSessionRequiresName(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	for _, name := range []string{"", "   "} {
		_, err := svc.CreateSession(context.Background(), name)
		assert.True(t, domain.IsValidation(err), "name %q: got %v", name, err)
	}
}

func TestGetSession(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, "Ana")
	require.NoError(t, err)

	got, err := svc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetSession(ctx, created.ID+1)
	assert.True(t, domain.IsNotFound(err))
}

func TestSessionsByName(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, "Ana")
	require.NoError(t, err)
	_, err = svc.CreateSession(ctx, "Joe")
	require.NoError(t, err)

	sessions, err := svc.SessionsByName(ctx, "Ana")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Ana", sessions[0].Name)

	_, err = svc.SessionsByName(ctx, " ")
	assert.True(t, domain.IsValidation(err))
}

func TestListMessages(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	ctx := context.Background()

	empty, err := svc.ListMessages(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	session, err := svc.CreateSession(ctx, "Ana")
	require.NoError(t, err)
	_, err = svc.Respond(ctx, session.ID, "Hello")
	require.NoError(t, err)

	appended, err := store.CreateMessage(ctx, session.ID, "one more", false)
	require.NoError(t, err)

	messages, err := svc.ListMessages(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].Timestamp.Before(messages[i-1].Timestamp))
	}
	assert.Equal(t, appended.ID, messages[2].ID)
}
