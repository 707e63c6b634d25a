package transfer_test

import (
	"context"
	"sort"

	"github.com/sitestock/sitestock-api/internal/domain/entity"
	"github.com/sitestock/sitestock-api/internal/domain/repository"
)

// In-memory repositories for use case tests. The fake tx runner snapshots
// state before running the callback and restores it on error, matching the
// rollback semantics of the real runner.

type fakeInventoryRepo struct {
	records map[string]*entity.InventoryRecord
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{records: map[string]*entity.InventoryRecord{}}
}

func (f *fakeInventoryRepo) Create(rec *entity.InventoryRecord) error {
	cp := *rec
	f.records[rec.ID] = &cp
	return nil
}

func (f *fakeInventoryRepo) GetByID(id string) (*entity.InventoryRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeInventoryRepo) GetByOwnerAndItem(ownerID, itemCode, itemName, itemType string) (*entity.InventoryRecord, error) {
	for _, rec := range f.records {
		if rec.CreatedByID == ownerID && rec.ItemCode == itemCode &&
			rec.ItemName == itemName && rec.ItemType == itemType {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) GetByOwnerAndItemForUpdate(ownerID, itemCode, itemName, itemType string) (*entity.InventoryRecord, error) {
	return f.GetByOwnerAndItem(ownerID, itemCode, itemName, itemType)
}

func (f *fakeInventoryRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.InventoryRecord, error) {
	var out []*entity.InventoryRecord
	for _, rec := range f.records {
		if ownerID == "" || rec.CreatedByID == ownerID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeInventoryRepo) ListBelowReorder(ownerID string) ([]*entity.InventoryRecord, error) {
	var out []*entity.InventoryRecord
	for _, rec := range f.records {
		if ownerID != "" && rec.CreatedByID != ownerID {
			continue
		}
		if rec.ReorderLevel > 0 && rec.Quantity <= rec.ReorderLevel {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out, nil
}

func (f *fakeInventoryRepo) Update(rec *entity.InventoryRecord) error {
	cp := *rec
	f.records[rec.ID] = &cp
	return nil
}

func (f *fakeInventoryRepo) UpdateQuantity(id string, quantity int64) error {
	if rec, ok := f.records[id]; ok {
		rec.Quantity = quantity
	}
	return nil
}

func (f *fakeInventoryRepo) Delete(id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeInventoryRepo) snapshot() map[string]*entity.InventoryRecord {
	snap := make(map[string]*entity.InventoryRecord, len(f.records))
	for id, rec := range f.records {
		cp := *rec
		snap[id] = &cp
	}
	return snap
}

type fakeTransferRepo struct {
	headers map[string]*entity.MaterialTransfer
	items   map[string]*entity.MaterialTransferItem
}

func newFakeTransferRepo() *fakeTransferRepo {
	return &fakeTransferRepo{
		headers: map[string]*entity.MaterialTransfer{},
		items:   map[string]*entity.MaterialTransferItem{},
	}
}

func (f *fakeTransferRepo) CreateHeader(t *entity.MaterialTransfer) error {
	cp := *t
	f.headers[t.ID] = &cp
	return nil
}

func (f *fakeTransferRepo) CreateItem(item *entity.MaterialTransferItem) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeTransferRepo) GetByID(id string) (*entity.MaterialTransfer, error) {
	t, ok := f.headers[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTransferRepo) List(limit, offset int) ([]*entity.MaterialTransfer, error) {
	var out []*entity.MaterialTransfer
	for _, t := range f.headers {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTransferRepo) ListByCreator(createdByID string, limit, offset int) ([]*entity.MaterialTransfer, error) {
	var out []*entity.MaterialTransfer
	for _, t := range f.headers {
		if t.CreatedByID == createdByID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTransferRepo) Update(t *entity.MaterialTransfer) error {
	cp := *t
	f.headers[t.ID] = &cp
	return nil
}

func (f *fakeTransferRepo) Delete(id string) error {
	delete(f.headers, id)
	for itemID, item := range f.items {
		if item.TransferID == id {
			delete(f.items, itemID)
		}
	}
	return nil
}

func (f *fakeTransferRepo) ListItems(transferID string) ([]*entity.MaterialTransferItem, error) {
	var out []*entity.MaterialTransferItem
	for _, item := range f.items {
		if item.TransferID == transferID {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTransferRepo) GetItem(itemID string) (*entity.MaterialTransferItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeTransferRepo) UpdateItem(item *entity.MaterialTransferItem) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeTransferRepo) DeleteItem(itemID string) error {
	delete(f.items, itemID)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeVehicleRepo struct {
	vehicles map[string]*entity.Vehicle
}

func newFakeVehicleRepo(vehicles ...*entity.Vehicle) *fakeVehicleRepo {
	f := &fakeVehicleRepo{vehicles: map[string]*entity.Vehicle{}}
	for _, v := range vehicles {
		f.vehicles[v.ID] = v
	}
	return f
}

func (f *fakeVehicleRepo) Create(v *entity.Vehicle) error {
	cp := *v
	f.vehicles[v.ID] = &cp
	return nil
}

func (f *fakeVehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVehicleRepo) List(limit, offset int) ([]*entity.Vehicle, error) {
	var out []*entity.Vehicle
	for _, v := range f.vehicles {
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RegistrationNo < out[j].RegistrationNo })
	return out, nil
}

// fakeTxRunner emulates transactional rollback over the in-memory repos.
type fakeTxRunner struct {
	inv *fakeInventoryRepo
	tr  *fakeTransferRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	invRepo repository.InventoryRepository,
	trRepo repository.TransferRepository,
) error) error {
	invSnap := r.inv.snapshot()
	headerSnap := make(map[string]*entity.MaterialTransfer, len(r.tr.headers))
	for id, t := range r.tr.headers {
		cp := *t
		headerSnap[id] = &cp
	}
	itemSnap := make(map[string]*entity.MaterialTransferItem, len(r.tr.items))
	for id, item := range r.tr.items {
		cp := *item
		itemSnap[id] = &cp
	}

	if err := fn(r.inv, r.tr); err != nil {
		r.inv.records = invSnap
		r.tr.headers = headerSnap
		r.tr.items = itemSnap
		return err
	}
	return nil
}
