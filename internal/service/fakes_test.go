package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"asset-management-api/internal/models"
	"asset-management-api/internal/store"
)

// In-memory repositories backing the service tests. They mirror the
// Postgres stores' contracts: GetByID hides soft-deleted rows, Exists
// checks are case-insensitive on names, deletes enforce dependent guards,
// and inserts enforce the partial unique indexes on active rows.

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type fakeUserRepo struct {
	users  map[int64]models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]models.User{}, nextID: 1}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Exists(_ context.Context, email, employmentID string) (bool, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) || u.EmploymentID == employmentID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ExistsID(_ context.Context, id int64) (bool, error) {
	u, ok := f.users[id]
	return ok && u.IsActive, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u models.User) (models.User, error) {
	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.PasswordHash = hash
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeRoleRepo struct {
	roles  map[int64]models.Role
	nextID int64
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[int64]models.Role{}, nextID: 1}
}

func (f *fakeRoleRepo) add(r models.Role) models.Role {
	r.ID = f.nextID
	f.nextID++
	f.roles[r.ID] = r
	return r
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id int64) (models.Role, error) {
	r, ok := f.roles[id]
	if !ok || !r.IsActive {
		return models.Role{}, store.ErrNotFound
	}
	return r, nil
}

func (f *fakeRoleRepo) GetByName(_ context.Context, name string) (models.Role, error) {
	for _, r := range f.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return models.Role{}, store.ErrNotFound
}

func (f *fakeRoleRepo) GetAll(_ context.Context) ([]models.Role, error) {
	out := []models.Role{}
	for _, r := range f.roles {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoleRepo) GetActive(_ context.Context) ([]models.Role, error) {
	out := []models.Role{}
	for _, r := range f.roles {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) Exists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, r := range f.roles {
		if r.ID != excludeID && strings.EqualFold(r.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoleRepo) Create(_ context.Context, r models.Role) (models.Role, error) {
	return f.add(r), nil
}

func (f *fakeRoleRepo) Update(_ context.Context, r models.Role) (models.Role, error) {
	if _, ok := f.roles[r.ID]; !ok {
		return models.Role{}, store.ErrNotFound
	}
	existing := f.roles[r.ID]
	r.UserCount = existing.UserCount
	f.roles[r.ID] = r
	return r, nil
}

func (f *fakeRoleRepo) Delete(_ context.Context, id int64) error {
	r, ok := f.roles[id]
	if !ok || !r.IsActive {
		return store.ErrNotFound
	}
	if r.UserCount > 0 {
		return store.ErrHasDependents
	}
	r.IsActive = false
	f.roles[id] = r
	return nil
}

type fakeCategoryRepo struct {
	categories map[int64]models.Category
	nextID     int64
	dependents map[int64]int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: map[int64]models.Category{},
		nextID:     1,
		dependents: map[int64]int{},
	}
}

func (f *fakeCategoryRepo) add(c models.Category) models.Category {
	c.ID = f.nextID
	f.nextID++
	f.categories[c.ID] = c
	return c
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (models.Category, error) {
	c, ok := f.categories[id]
	if !ok || !c.IsActive {
		return models.Category{}, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) GetAll(_ context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetActive(_ context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range f.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Exists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, c := range f.categories {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, c models.Category) (models.Category, error) {
	return f.add(c), nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c models.Category) (models.Category, error) {
	if _, ok := f.categories[c.ID]; !ok {
		return models.Category{}, store.ErrNotFound
	}
	f.categories[c.ID] = c
	return c, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	c, ok := f.categories[id]
	if !ok || !c.IsActive {
		return store.ErrNotFound
	}
	if f.dependents[id] > 0 {
		return store.ErrHasDependents
	}
	c.IsActive = false
	f.categories[id] = c
	return nil
}

type fakeBrandRepo struct {
	brands     map[int64]models.Brand
	dependents map[int64]int
	nextID     int64
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: map[int64]models.Brand{}, dependents: map[int64]int{}, nextID: 1}
}

func (f *fakeBrandRepo) add(b models.Brand) models.Brand {
	b.ID = f.nextID
	f.nextID++
	f.brands[b.ID] = b
	return b
}

func (f *fakeBrandRepo) GetByID(_ context.Context, id int64) (models.Brand, error) {
	b, ok := f.brands[id]
	if !ok || !b.IsActive {
		return models.Brand{}, store.ErrNotFound
	}
	return b, nil
}

func (f *fakeBrandRepo) GetAll(_ context.Context) ([]models.Brand, error) {
	out := []models.Brand{}
	for _, b := range f.brands {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBrandRepo) GetActive(_ context.Context) ([]models.Brand, error) {
	out := []models.Brand{}
	for _, b := range f.brands {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBrandRepo) Exists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, b := range f.brands {
		if b.ID != excludeID && strings.EqualFold(b.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBrandRepo) Create(_ context.Context, b models.Brand) (models.Brand, error) {
	return f.add(b), nil
}

func (f *fakeBrandRepo) Update(_ context.Context, b models.Brand) (models.Brand, error) {
	if _, ok := f.brands[b.ID]; !ok {
		return models.Brand{}, store.ErrNotFound
	}
	f.brands[b.ID] = b
	return b, nil
}

func (f *fakeBrandRepo) Delete(_ context.Context, id int64) error {
	b, ok := f.brands[id]
	if !ok || !b.IsActive {
		return store.ErrNotFound
	}
	if f.dependents[id] > 0 {
		return store.ErrHasDependents
	}
	b.IsActive = false
	f.brands[id] = b
	return nil
}

type fakeLocationRepo struct {
	locations  map[int64]models.Location
	dependents map[int64]int
	nextID     int64
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: map[int64]models.Location{}, dependents: map[int64]int{}, nextID: 1}
}

func (f *fakeLocationRepo) add(l models.Location) models.Location {
	l.ID = f.nextID
	f.nextID++
	f.locations[l.ID] = l
	return l
}

func (f *fakeLocationRepo) GetByID(_ context.Context, id int64) (models.Location, error) {
	l, ok := f.locations[id]
	if !ok || !l.IsActive {
		return models.Location{}, store.ErrNotFound
	}
	return l, nil
}

func (f *fakeLocationRepo) GetAll(_ context.Context) ([]models.Location, error) {
	out := []models.Location{}
	for _, l := range f.locations {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLocationRepo) GetActive(_ context.Context) ([]models.Location, error) {
	out := []models.Location{}
	for _, l := range f.locations {
		if l.IsActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLocationRepo) Exists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, l := range f.locations {
		if l.ID != excludeID && strings.EqualFold(l.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLocationRepo) Create(_ context.Context, l models.Location) (models.Location, error) {
	return f.add(l), nil
}

func (f *fakeLocationRepo) Update(_ context.Context, l models.Location) (models.Location, error) {
	if _, ok := f.locations[l.ID]; !ok {
		return models.Location{}, store.ErrNotFound
	}
	f.locations[l.ID] = l
	return l, nil
}

func (f *fakeLocationRepo) Delete(_ context.Context, id int64) error {
	l, ok := f.locations[id]
	if !ok || !l.IsActive {
		return store.ErrNotFound
	}
	if f.dependents[id] > 0 {
		return store.ErrHasDependents
	}
	l.IsActive = false
	f.locations[id] = l
	return nil
}

type fakeAssetRepo struct {
	assets map[int64]models.Asset
	nextID int64
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: map[int64]models.Asset{}, nextID: 1}
}

func (f *fakeAssetRepo) GetByID(_ context.Context, id int64) (models.Asset, error) {
	a, ok := f.assets[id]
	if !ok || !a.IsActive {
		return models.Asset{}, store.ErrNotFound
	}
	return a, nil
}

func (f *fakeAssetRepo) GetBySerialNumber(_ context.Context, serial string) (models.Asset, error) {
	for _, a := range f.assets {
		if a.SerialNumber == serial && a.IsActive {
			return a, nil
		}
	}
	return models.Asset{}, store.ErrNotFound
}

func (f *fakeAssetRepo) GetAll(_ context.Context) ([]models.Asset, error) {
	out := []models.Asset{}
	for _, a := range f.assets {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) GetByUserID(_ context.Context, userID int64) ([]models.Asset, error) {
	out := []models.Asset{}
	for _, a := range f.assets {
		if a.IsActive && a.AssignedToID != nil && *a.AssignedToID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) GetByCategoryID(_ context.Context, categoryID int64) ([]models.Asset, error) {
	out := []models.Asset{}
	for _, a := range f.assets {
		if a.IsActive && a.CategoryID != nil && *a.CategoryID == categoryID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) GetByLocationID(_ context.Context, locationID int64) ([]models.Asset, error) {
	out := []models.Asset{}
	for _, a := range f.assets {
		if a.IsActive && a.LocationID != nil && *a.LocationID == locationID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) GetByStatus(_ context.Context, status string) ([]models.Asset, error) {
	out := []models.Asset{}
	for _, a := range f.assets {
		if a.IsActive && a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) SerialNumberExists(_ context.Context, serial string) (bool, error) {
	for _, a := range f.assets {
		if a.SerialNumber == serial && a.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAssetRepo) Create(_ context.Context, a models.Asset) (models.Asset, error) {
	for _, other := range f.assets {
		if other.IsActive && other.SerialNumber == a.SerialNumber {
			return models.Asset{}, uniqueViolation("idx_assets_serial_number_active")
		}
	}
	a.ID = f.nextID
	f.nextID++
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.assets[a.ID] = a
	return a, nil
}

func (f *fakeAssetRepo) Update(_ context.Context, a models.Asset) (models.Asset, error) {
	existing, ok := f.assets[a.ID]
	if !ok || !existing.IsActive {
		return models.Asset{}, store.ErrNotFound
	}
	a.UpdatedAt = time.Now()
	f.assets[a.ID] = a
	return a, nil
}

func (f *fakeAssetRepo) Delete(_ context.Context, id int64) error {
	a, ok := f.assets[id]
	if !ok || !a.IsActive {
		return store.ErrNotFound
	}
	a.IsActive = false
	f.assets[id] = a
	return nil
}

type fakeOrderRepo struct {
	orders map[int64]models.PurchaseOrder
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]models.PurchaseOrder{}, nextID: 1}
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (models.PurchaseOrder, error) {
	po, ok := f.orders[id]
	if !ok || !po.IsActive {
		return models.PurchaseOrder{}, store.ErrNotFound
	}
	return po, nil
}

func (f *fakeOrderRepo) GetAll(_ context.Context) ([]models.PurchaseOrder, error) {
	out := []models.PurchaseOrder{}
	for _, po := range f.orders {
		if po.IsActive {
			out = append(out, po)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByStatuses(_ context.Context, statuses []string) ([]models.PurchaseOrder, error) {
	out := []models.PurchaseOrder{}
	for _, po := range f.orders {
		if !po.IsActive {
			continue
		}
		for _, st := range statuses {
			if po.Status == st {
				out = append(out, po)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByRequester(_ context.Context, requester string) ([]models.PurchaseOrder, error) {
	out := []models.PurchaseOrder{}
	for _, po := range f.orders {
		if po.IsActive && strings.EqualFold(po.RequesterName, requester) {
			out = append(out, po)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByCategory(_ context.Context, category string) ([]models.PurchaseOrder, error) {
	out := []models.PurchaseOrder{}
	for _, po := range f.orders {
		if po.IsActive && strings.EqualFold(po.Category, category) {
			out = append(out, po)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByLocation(_ context.Context, location string) ([]models.PurchaseOrder, error) {
	out := []models.PurchaseOrder{}
	for _, po := range f.orders {
		if po.IsActive && strings.EqualFold(po.Location, location) {
			out = append(out, po)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByDateRange(_ context.Context, from, to time.Time) ([]models.PurchaseOrder, error) {
	out := []models.PurchaseOrder{}
	for _, po := range f.orders {
		if po.IsActive && !po.OrderDateTime.Before(from) && !po.OrderDateTime.After(to) {
			out = append(out, po)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) PRIDExists(_ context.Context, prID string) (bool, error) {
	for _, po := range f.orders {
		if po.PRID == prID && po.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrderRepo) Create(_ context.Context, po models.PurchaseOrder) (models.PurchaseOrder, error) {
	for _, other := range f.orders {
		if other.IsActive && other.PRID == po.PRID {
			return models.PurchaseOrder{}, uniqueViolation("idx_purchase_orders_pr_id_active")
		}
	}
	po.ID = f.nextID
	f.nextID++
	po.CreatedAt = time.Now()
	po.UpdatedAt = po.CreatedAt
	f.orders[po.ID] = po
	return po, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, po models.PurchaseOrder) (models.PurchaseOrder, error) {
	existing, ok := f.orders[po.ID]
	if !ok || !existing.IsActive {
		return models.PurchaseOrder{}, store.ErrNotFound
	}
	po.UpdatedAt = time.Now()
	f.orders[po.ID] = po
	return po, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status string, updatedBy *int64) (models.PurchaseOrder, error) {
	po, ok := f.orders[id]
	if !ok || !po.IsActive {
		return models.PurchaseOrder{}, store.ErrNotFound
	}
	po.Status = status
	po.UpdatedByID = updatedBy
	po.UpdatedAt = time.Now()
	f.orders[id] = po
	return po, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	po, ok := f.orders[id]
	if !ok || !po.IsActive {
		return store.ErrNotFound
	}
	po.IsActive = false
	f.orders[id] = po
	return nil
}

type fakeVendorRepo struct {
	vendors map[int64]models.Vendor
	nextID  int64
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: map[int64]models.Vendor{}, nextID: 1}
}

func (f *fakeVendorRepo) GetByID(_ context.Context, id int64) (models.Vendor, error) {
	v, ok := f.vendors[id]
	if !ok {
		return models.Vendor{}, store.ErrNotFound
	}
	return v, nil
}

func (f *fakeVendorRepo) GetAll(_ context.Context) ([]models.Vendor, error) {
	out := []models.Vendor{}
	for _, v := range f.vendors {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVendorRepo) GSTExists(_ context.Context, gst string, excludeID int64) (bool, error) {
	for _, v := range f.vendors {
		if v.VendorID != excludeID && v.GSTNumber == gst {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVendorRepo) PANExists(_ context.Context, pan string, excludeID int64) (bool, error) {
	for _, v := range f.vendors {
		if v.VendorID != excludeID && v.PANNumber == pan {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVendorRepo) Create(_ context.Context, v models.Vendor) (models.Vendor, error) {
	v.VendorID = f.nextID
	f.nextID++
	v.CreatedAt = time.Now()
	f.vendors[v.VendorID] = v
	return v, nil
}

func (f *fakeVendorRepo) Update(_ context.Context, v models.Vendor) (models.Vendor, error) {
	if _, ok := f.vendors[v.VendorID]; !ok {
		return models.Vendor{}, store.ErrNotFound
	}
	f.vendors[v.VendorID] = v
	return v, nil
}

func (f *fakeVendorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.vendors[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.vendors, id)
	return nil
}
