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

func addressInput(label string, isDefault bool) AddressInput {
	return AddressInput{
		Name:      label,
		FullName:  "Asha Verma",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		Address:   "12 Gallery Lane",
		City:      "Pune",
		State:     "Maharashtra",
		Pincode:   "411001",
		IsDefault: isDefault,
	}
}

func defaultCount(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Count(&n).Error)
	return n
}

func TestSetDefaultLeavesExactlyOne(t *testing.T) {
	db := newTestDB(t)
	svc := NewAddressService(repositories.NewAddressRepository(db))
	user := seedUser(t, db, "asha@example.com")

	home, err := svc.Create(user.ID, addressInput("Home", true))
	require.NoError(t, err)
	studio, err := svc.Create(user.ID, addressInput("Studio", false))
	require.NoError(t, err)

	require.EqualValues(t, 1, defaultCount(t, db, user.ID))

	promoted, err := svc.SetDefault(studio.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsDefault)

	assert.EqualValues(t, 1, defaultCount(t, db, user.ID))

	var demoted models.Address
	require.NoError(t, db.First(&demoted, home.ID).Error)
	assert.False(t, demoted.IsDefault)
}

func TestCreateWithDefaultClearsOthers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAddressService(repositories.NewAddressRepository(db))
	user := seedUser(t, db, "asha@example.com")

	_, err := svc.Create(user.ID, addressInput("Home", true))
	require.NoError(t, err)
	_, err = svc.Create(user.ID, addressInput("Studio", true))
	require.NoError(t, err)

	assert.EqualValues(t, 1, defaultCount(t, db, user.ID))

	d, err := svc.Default(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Studio", d.Name)
}

func TestDuplicateLabelConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewAddressService(repositories.NewAddressRepository(db))
	user := seedUser(t, db, "asha@example.com")
	other := seedUser(t, db, "other@example.com")

	_, err := svc.Create(user.ID, addressInput("Home", false))
	require.NoError(t, err)

	_, err = svc.Create(user.ID, addressInput("Home", false))
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// labels are scoped per user
	_, err = svc.Create(other.ID, addressInput("Home", false))
	assert.NoError(t, err)
}

func TestForeignAddressReadsAsMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewAddressService(repositories.NewAddressRepository(db))
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	address, err := svc.Create(owner.ID, addressInput("Home", false))
	require.NoError(t, err)

	_, err = svc.Get(address.ID, other.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = svc.SetDefault(address.ID, other.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	err = svc.Delete(address.ID, other.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestAdminListSpansUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAddressService(repositories.NewAddressRepository(db))
	asha := seedUser(t, db, "asha@example.com")
	ravi := seedUser(t, db, "ravi@example.com")

	_, err := svc.Create(asha.ID, addressInput("Home", true))
	require.NoError(t, err)
	_, err = svc.Create(ravi.ID, addressInput("Home", false))
	require.NoError(t, err)

	addresses, p, err := svc.AdminList(1, 20)
	require.NoError(t, err)
	assert.Len(t, addresses, 2)
	assert.EqualValues(t, 2, p.Total)
}

func TestAdminAddressLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewAddressService(repositories.NewAddressRepository(db))
	asha := seedUser(t, db, "asha@example.com")

	created, err := svc.Create(asha.ID, addressInput("Home", true))
	require.NoError(t, err)

	// Back office reads any user's address.
	loaded, err := svc.AdminGet(created.ID)
	require.NoError(t, err)
	assert.Equal(t, asha.ID, loaded.UserID)

	// An admin edit keeps the owner's single-default guarantee.
	input := addressInput("Studio", true)
	updated, err := svc.AdminUpdate(created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Studio", updated.Name)
	assert.EqualValues(t, 1, defaultCount(t, db, asha.ID))

	require.NoError(t, svc.AdminDelete(created.ID))

	_, err = svc.AdminGet(created.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	err = svc.AdminDelete(created.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDefaultWithNoneSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewAddressService(repositories.NewAddressRepository(db))
	user := seedUser(t, db, "asha@example.com")

	_, err := svc.Create(user.ID, addressInput("Home", false))
	require.NoError(t, err)

	_, err = svc.Default(user.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
