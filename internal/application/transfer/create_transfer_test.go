package transfer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestock/sitestock-api/internal/application/dto"
	"github.com/sitestock/sitestock-api/internal/application/transfer"
	"github.com/sitestock/sitestock-api/internal/domain"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
)

const (
	storeUserID = "00000000-0000-0000-0000-00000000000a"
	siteUserID  = "00000000-0000-0000-0000-00000000000b"
)

type createFixture struct {
	inv     *fakeInventoryRepo
	tr      *fakeTransferRepo
	users   *fakeUserRepo
	uc      *transfer.CreateTransferUseCase
	actor   dto.Actor
	vehicle *fakeVehicleRepo
}

func newCreateFixture(t *testing.T, policy transfer.StockPolicy) *createFixture {
	t.Helper()
	inv := newFakeInventoryRepo()
	tr := newFakeTransferRepo()
	users := newFakeUserRepo(
		&entity.User{ID: storeUserID, Name: "Store Keeper", Role: entity.RoleStore, Location: "Central Store"},
		&entity.User{ID: siteUserID, Name: "Site Engineer", Role: entity.RoleSite, Location: "Site A"},
	)
	vehicles := newFakeVehicleRepo()
	uc := transfer.NewCreateTransferUseCase(&fakeTxRunner{inv: inv, tr: tr}, users, vehicles, policy)
	return &createFixture{
		inv:     inv,
		tr:      tr,
		users:   users,
		uc:      uc,
		actor:   dto.Actor{UserID: storeUserID, Role: entity.RoleStore},
		vehicle: vehicles,
	}
}

func (f *createFixture) seedStock(t *testing.T, code, name, typ string, qty int64) *entity.InventoryRecord {
	t.Helper()
	rec := &entity.InventoryRecord{
		ID:          "rec-" + code + "-" + typ,
		CreatedByID: storeUserID,
		ItemCode:    code,
		ItemName:    name,
		ItemType:    typ,
		Quantity:    qty,
		Unit:        "bags",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, f.inv.Create(rec))
	return rec
}

func basicRequest(items ...dto.TransferItemRequest) dto.CreateTransferRequest {
	return dto.CreateTransferRequest{
		FromUserID:   storeUserID,
		ToUserID:     siteUserID,
		FromLocation: "Central Store",
		ToLocation:   "Site A",
		Items:        items,
	}
}

func TestCreateTransfer_DeductsStock(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicyEnforce)
	rec := f.seedStock(t, "ITEM-001", entity.ItemCement, entity.ItemTypeNew, 50)

	resp, err := f.uc.Create(context.Background(), f.actor, basicRequest(
		dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 10},
	))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 1, resp.ItemsProcessed)
	assert.Equal(t, entity.TransferStatusPending, resp.Transfer.Status, "status defaults to PENDING")
	assert.Equal(t, entity.TransferPriorityNormal, resp.Transfer.Priority, "priority defaults to NORMAL")
	assert.NotEmpty(t, resp.Transfer.TransferID, "a transfer number is generated when absent")
	require.Len(t, resp.Transfer.Items, 1)
	require.NotNil(t, resp.Transfer.Items[0].InventoryRecordID)
	assert.Equal(t, rec.ID, *resp.Transfer.Items[0].InventoryRecordID)
	require.NotNil(t, resp.Transfer.CreatedBy, "creator is resolved into the response")
	assert.Equal(t, storeUserID, resp.Transfer.CreatedBy.ID)

	after, err := f.inv.GetByID(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), after.Quantity, "50 - 10 = 40")
}

func TestCreateTransfer_InsufficientStock_RollsBack(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicyEnforce)
	rec := f.seedStock(t, "ITEM-001", entity.ItemCement, entity.ItemTypeNew, 50)

	_, err := f.uc.Create(context.Background(), f.actor, basicRequest(
		dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 100},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	after, err := f.inv.GetByID(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), after.Quantity, "quantity untouched on failure")
	headers, _ := f.tr.List(100, 0)
	assert.Empty(t, headers, "no transfer persisted on failure")
}

func TestCreateTransfer_MultiItemFailure_IsAtomic(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicyEnforce)
	cement := f.seedStock(t, "ITEM-001", entity.ItemCement, entity.ItemTypeNew, 50)
	steel := f.seedStock(t, "ITEM-002", entity.ItemSteel, entity.ItemTypeNew, 5)

	_, err := f.uc.Create(context.Background(), f.actor, basicRequest(
		dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 10},
		dto.TransferItemRequest{ItemCode: "ITEM-002", ItemName: entity.ItemSteel, Type: entity.ItemTypeNew, Quantity: 20},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// The first line's deduction must not survive the second line's failure.
	afterCement, _ := f.inv.GetByID(cement.ID)
	assert.Equal(t, int64(50), afterCement.Quantity)
	afterSteel, _ := f.inv.GetByID(steel.ID)
	assert.Equal(t, int64(5), afterSteel.Quantity)
	headers, _ := f.tr.List(100, 0)
	assert.Empty(t, headers)
}

func TestCreateTransfer_MissingSourceRecord_Enforce(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicyEnforce)

	_, err := f.uc.Create(context.Background(), f.actor, basicRequest(
		dto.TransferItemRequest{ItemCode: "ITEM-404", ItemName: entity.ItemSand, Type: entity.ItemTypeNew, Quantity: 1},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCreateTransfer_MissingSourceRecord_SkipMissing(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicySkipMissing)

	resp, err := f.uc.Create(context.Background(), f.actor, basicRequest(
		dto.TransferItemRequest{ItemCode: "ITEM-404", ItemName: entity.ItemSand, Type: entity.ItemTypeNew, Quantity: 1},
	))
	require.NoError(t, err)
	require.Len(t, resp.Transfer.Items, 1)
	assert.Nil(t, resp.Transfer.Items[0].InventoryRecordID, "no record matched, no deduction")
}

func TestCreateTransfer_SkipMissing_StillChecksQuantity(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicySkipMissing)
	f.seedStock(t, "ITEM-001", entity.ItemCement, entity.ItemTypeNew, 5)

	_, err := f.uc.Create(context.Background(), f.actor, basicRequest(
		dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 10},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCreateTransfer_PolicyOff_NeverFailsOnStock(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicyOff)
	rec := f.seedStock(t, "ITEM-001", entity.ItemCement, entity.ItemTypeNew, 5)

	resp, err := f.uc.Create(context.Background(), f.actor, basicRequest(
		dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 10},
		dto.TransferItemRequest{ItemCode: "ITEM-404", ItemName: entity.ItemSand, Type: entity.ItemTypeNew, Quantity: 3},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ItemsProcessed)

	// Insufficient line is recorded but not deducted.
	after, _ := f.inv.GetByID(rec.ID)
	assert.Equal(t, int64(5), after.Quantity)
}

func TestCreateTransfer_ValidationFailures(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicyEnforce)
	item := dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 1}

	cases := []struct {
		name string
		in   dto.CreateTransferRequest
	}{
		{"missing fromUserId", dto.CreateTransferRequest{ToUserID: siteUserID, Items: []dto.TransferItemRequest{item}}},
		{"missing toUserId", dto.CreateTransferRequest{FromUserID: storeUserID, Items: []dto.TransferItemRequest{item}}},
		{"empty items", basicRequest()},
		{"zero quantity", basicRequest(dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 0})},
		{"negative quantity", basicRequest(dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: -4})},
		{"bad item type", basicRequest(dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: "USED", Quantity: 1})},
		{"unknown material", basicRequest(dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: "MARBLE", Type: entity.ItemTypeNew, Quantity: 1})},
		{"unknown status", func() dto.CreateTransferRequest { r := basicRequest(item); r.Status = "SHIPPED"; return r }()},
		{"unknown priority", func() dto.CreateTransferRequest { r := basicRequest(item); r.Priority = "WHENEVER"; return r }()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Create(context.Background(), f.actor, tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	headers, _ := f.tr.List(100, 0)
	assert.Empty(t, headers, "validation failures never write")
}

func TestCreateTransfer_UnknownUsers(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicyEnforce)
	f.seedStock(t, "ITEM-001", entity.ItemCement, entity.ItemTypeNew, 50)
	item := dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 1}

	in := basicRequest(item)
	in.FromUserID = "no-such-user"
	_, err := f.uc.Create(context.Background(), f.actor, in)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	in = basicRequest(item)
	in.ToUserID = "no-such-user"
	_, err = f.uc.Create(context.Background(), f.actor, in)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateTransfer_UnknownVehicle(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicyEnforce)
	f.seedStock(t, "ITEM-001", entity.ItemCement, entity.ItemTypeNew, 50)

	in := basicRequest(dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 1})
	missing := "no-such-vehicle"
	in.VehicleID = &missing
	_, err := f.uc.Create(context.Background(), f.actor, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateTransfer_TwoTransfersDrainStockSequentially(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicyEnforce)
	rec := f.seedStock(t, "ITEM-001", entity.ItemCement, entity.ItemTypeNew, 30)
	req := basicRequest(dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 20})

	_, err := f.uc.Create(context.Background(), f.actor, req)
	require.NoError(t, err)

	// Second transfer sees the deducted quantity and fails.
	_, err = f.uc.Create(context.Background(), f.actor, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	after, _ := f.inv.GetByID(rec.ID)
	assert.Equal(t, int64(10), after.Quantity)
	headers, _ := f.tr.List(100, 0)
	assert.Len(t, headers, 1)
}

func TestCreateTransfer_IdenticalRequestsCreateTwoTransfers(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicyEnforce)
	rec := f.seedStock(t, "ITEM-001", entity.ItemCement, entity.ItemTypeNew, 50)

	// Same body twice, explicit transfer number included: no dedup, each
	// request stands alone and deducts on its own.
	req := basicRequest(dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 10})
	req.TransferID = "MT-REPEAT-1"

	first, err := f.uc.Create(context.Background(), f.actor, req)
	require.NoError(t, err)
	second, err := f.uc.Create(context.Background(), f.actor, req)
	require.NoError(t, err)

	assert.NotEqual(t, first.Transfer.ID, second.Transfer.ID)
	assert.Equal(t, "MT-REPEAT-1", first.Transfer.TransferID)
	assert.Equal(t, "MT-REPEAT-1", second.Transfer.TransferID)

	after, _ := f.inv.GetByID(rec.ID)
	assert.Equal(t, int64(30), after.Quantity, "both transfers deducted")
	headers, _ := f.tr.List(100, 0)
	assert.Len(t, headers, 2)
}

func TestCreateTransfer_ExplicitTransferNoAndDate(t *testing.T) {
	f := newCreateFixture(t, transfer.PolicyEnforce)
	f.seedStock(t, "ITEM-001", entity.ItemCement, entity.ItemTypeNew, 50)

	requested := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	in := basicRequest(dto.TransferItemRequest{ItemCode: "ITEM-001", ItemName: entity.ItemCement, Type: entity.ItemTypeNew, Quantity: 5})
	in.TransferID = "MT-2026-0042"
	in.RequestedDate = &requested

	resp, err := f.uc.Create(context.Background(), f.actor, in)
	require.NoError(t, err)
	assert.Equal(t, "MT-2026-0042", resp.Transfer.TransferID)
	assert.True(t, resp.Transfer.RequestedDate.Equal(requested))
	assert.Equal(t, storeUserID, resp.Transfer.CreatedByID, "creator comes from the token, not the body")
}
