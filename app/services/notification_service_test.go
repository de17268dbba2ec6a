package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
	"gorm.io/gorm"
)

func newNotificationService(db *gorm.DB) *NotificationService {
	return NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewProductRepository(db),
	)
}

func TestCreateRepaintNotification(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	user := seedUser(t, db, "asha@example.com")
	p := seedProduct(t, db, "Majestic Peacock", 2799, true)

	n, err := svc.CreateRepaint(user.ID, p.ID)
	require.NoError(t, err)

	assert.Equal(t, "Repaint request for: Majestic Peacock", n.Message)
	assert.Equal(t, models.NotificationRepaint, n.Type)
	assert.False(t, n.IsRead)
}

func TestCreateRepaintMissingProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	user := seedUser(t, db, "asha@example.com")

	_, err := svc.CreateRepaint(user.ID, 999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGetMarksRead(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	user := seedUser(t, db, "asha@example.com")
	p := seedProduct(t, db, "Graceful Bird", 2349, true)

	created, err := svc.CreateRepaint(user.ID, p.ID)
	require.NoError(t, err)

	count, err := svc.UnreadCount()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	viewed, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.True(t, viewed.IsRead, "viewing marks the notification read")

	count, err = svc.UnreadCount()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestListFiltersByReadState(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	user := seedUser(t, db, "asha@example.com")
	p := seedProduct(t, db, "Tiger", 1799, true)

	first, err := svc.CreateRepaint(user.ID, p.ID)
	require.NoError(t, err)
	_, err = svc.CreateRepaint(user.ID, p.ID)
	require.NoError(t, err)

	_, err = svc.SetRead(first.ID, true)
	require.NoError(t, err)

	unread := false
	list, _, err := svc.List(&unread, 1, 20)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	read := true
	list, _, err = svc.List(&read, 1, 20)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, p2, err := svc.List(nil, 1, 20)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.EqualValues(t, 2, p2.Total)
}
