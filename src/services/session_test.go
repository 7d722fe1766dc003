package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/brokertax/src/models"
)

func TestSessionStoreDeleteWaitsForUpdate(t *testing.T) {
	st := NewSessionStore(time.Minute, time.Minute)
	deleted := make(chan struct{})

	st.update("a", func(sess *session) {
		go func() {
			st.delete("a")
			close(deleted)
		}()
		select {
		case <-deleted:
			t.Fatal("delete finished while the update was running")
		case <-time.After(20 * time.Millisecond):
		}
		sess.replace(models.NewReport(), "a.csv", "hash")
	})

	<-deleted
	_, ok := st.get("a")
	assert.False(t, ok, "delete after the update removes the session")
}

func TestSessionStoreUpdateAfterDeleteKeepsReport(t *testing.T) {
	st := NewSessionStore(time.Minute, time.Minute)
	st.update("a", func(sess *session) {
		sess.replace(models.NewReport(), "old.csv", "h1")
	})
	st.delete("a")

	report := models.NewReport()
	st.update("a", func(sess *session) {
		sess.replace(report, "new.csv", "h2")
	})

	sess, ok := st.get("a")
	require.True(t, ok)
	snap := sess.snapshot()
	assert.Same(t, report, snap.report)
	assert.Equal(t, "new.csv", snap.fileName)
	assert.Equal(t, 1, st.Count())
}
