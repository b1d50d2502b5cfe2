package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/models"
)

func createRegion(t *testing.T, svc *RegionService, storeID uuid.UUID, owner, province, city string) *dto.RegionResponse {
	t.Helper()
	resp, err := svc.Create(asManager(owner), &dto.RegionRequest{
		StoreID:  storeID,
		Province: province,
		City:     city,
		District: "Central",
	})
	require.NoError(t, err)
	return resp
}

func TestRegionCreate(t *testing.T) {
	db := setupTestDB(t)
	store := createStore(t, NewStoreService(db), "manager1", "Kimchi House")
	svc := NewRegionService(db)

	resp := createRegion(t, svc, store.ID, "manager1", "Gyeonggi", "Seongnam")
	assert.Equal(t, "Gyeonggi", resp.Province)
	assert.Equal(t, store.ID, resp.StoreID)
}

func TestRegionCreateDeniedForNonOwner(t *testing.T) {
	db := setupTestDB(t)
	store := createStore(t, NewStoreService(db), "manager1", "Kimchi House")
	svc := NewRegionService(db)

	_, err := svc.Create(asManager("manager2"), &dto.RegionRequest{
		StoreID: store.ID, Province: "Gyeonggi", City: "Seongnam",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRegionCreateMissingStore(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegionService(db)

	_, err := svc.Create(asManager("manager1"), &dto.RegionRequest{
		StoreID: uuid.New(), Province: "Gyeonggi", City: "Seongnam",
	})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestRegionListByStore(t *testing.T) {
	db := setupTestDB(t)
	stores := NewStoreService(db)
	first := createStore(t, stores, "manager1", "First")
	second := createStore(t, stores, "manager1", "Second")
	svc := NewRegionService(db)

	createRegion(t, svc, first.ID, "manager1", "Seoul", "Gangnam")
	createRegion(t, svc, first.ID, "manager1", "Seoul", "Mapo")
	createRegion(t, svc, second.ID, "manager1", "Busan", "Haeundae")

	page, err := svc.ListByStore(first.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.EqualValues(t, 2, page.TotalElements)
}

func TestRegionListAll(t *testing.T) {
	db := setupTestDB(t)
	store := createStore(t, NewStoreService(db), "manager1", "Kimchi House")
	svc := NewRegionService(db)

	createRegion(t, svc, store.ID, "manager1", "Seoul", "Gangnam")
	createRegion(t, svc, store.ID, "manager1", "Busan", "Haeundae")

	page, err := svc.ListAll(0, 1)
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)
	assert.EqualValues(t, 2, page.TotalElements)
}

func TestRegionSearchKeyword(t *testing.T) {
	db := setupTestDB(t)
	store := createStore(t, NewStoreService(db), "manager1", "Kimchi House")
	svc := NewRegionService(db)

	createRegion(t, svc, store.ID, "manager1", "Seoul", "Gangnam")
	createRegion(t, svc, store.ID, "manager1", "Busan", "Haeundae")

	// Case-insensitive and matches any of province, city, district.
	page, err := svc.Search("SEOUL", 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Seoul", page.Content[0].Province)

	page, err = svc.Search("haeundae", 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Busan", page.Content[0].Province)

	page, err = svc.Search("nowhere", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
}

func TestRegionUpdate(t *testing.T) {
	db := setupTestDB(t)
	store := createStore(t, NewStoreService(db), "manager1", "Kimchi House")
	svc := NewRegionService(db)

	region := createRegion(t, svc, store.ID, "manager1", "Seoul", "Gangnam")

	updated, err := svc.Update(region.ID, asManager("manager1"), &dto.RegionRequest{
		StoreID: store.ID, Province: "Seoul", City: "Seocho", District: "Bangbae",
	})
	require.NoError(t, err)
	assert.Equal(t, "Seocho", updated.City)

	_, err = svc.Update(region.ID, asManager("manager2"), &dto.RegionRequest{
		StoreID: store.ID, Province: "Seoul", City: "Seocho",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRegionSoftDelete(t *testing.T) {
	db := setupTestDB(t)
	store := createStore(t, NewStoreService(db), "manager1", "Kimchi House")
	svc := NewRegionService(db)

	region := createRegion(t, svc, store.ID, "manager1", "Seoul", "Gangnam")

	require.NoError(t, svc.SoftDelete(region.ID, asMaster("root")))

	var raw models.Region
	require.NoError(t, db.Unscoped().Where("id = ?", region.ID).First(&raw).Error)
	assert.True(t, raw.DeletedAt.Valid)
	require.NotNil(t, raw.DeletedBy)
	assert.Equal(t, "root", *raw.DeletedBy)

	page, err := svc.ListByStore(store.ID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
}
