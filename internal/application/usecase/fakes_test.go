package usecase_test

import (
	"errors"
	"slices"
	"strconv"

	"github.com/jcamargo/filamentario-api/internal/domain/entity"
	"github.com/jcamargo/filamentario-api/internal/domain/repository"
)

// fakeSpoolRepo implementación en memoria de repository.SpoolRepository.
type fakeSpoolRepo struct {
	nextID  int64
	spools  map[int64]*entity.Spool
	failIDs map[int64]bool // ids cuyas escrituras fallan, para simular errores del store
}

func newFakeSpoolRepo() *fakeSpoolRepo {
	return &fakeSpoolRepo{
		spools:  make(map[int64]*entity.Spool),
		failIDs: make(map[int64]bool),
	}
}

func (f *fakeSpoolRepo) Create(scope repository.Scope, s *entity.Spool) (int64, error) {
	f.nextID++
	cp := *s
	cp.ID = f.nextID
	cp.OwnerID = scope.OwnerID
	f.spools[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeSpoolRepo) GetByID(scope repository.Scope, id int64) (*entity.Spool, error) {
	s, ok := f.spools[id]
	if !ok || s.OwnerID != scope.OwnerID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSpoolRepo) sortedIDs() []int64 {
	ids := make([]int64, 0, len(f.spools))
	for id := range f.spools {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (f *fakeSpoolRepo) ListAll(scope repository.Scope) ([]*entity.Spool, error) {
	out := make([]*entity.Spool, 0)
	for _, id := range f.sortedIDs() {
		if s := f.spools[id]; s.OwnerID == scope.OwnerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeSpoolRepo) List(scope repository.Scope, limit, offset int) ([]*entity.Spool, error) {
	all, _ := f.ListAll(scope)
	if offset >= len(all) {
		return []*entity.Spool{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeSpoolRepo) Update(scope repository.Scope, s *entity.Spool) (bool, error) {
	existing, ok := f.spools[s.ID]
	if !ok || existing.OwnerID != scope.OwnerID {
		return false, nil
	}
	cp := *s
	cp.OwnerID = scope.OwnerID
	f.spools[s.ID] = &cp
	return true, nil
}

func (f *fakeSpoolRepo) ApplyPatch(scope repository.Scope, id int64, patch repository.SpoolPatch) (bool, error) {
	if f.failIDs[id] {
		return false, errors.New("falla simulada del store")
	}
	s, ok := f.spools[id]
	if !ok || s.OwnerID != scope.OwnerID {
		return false, nil
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Material != nil {
		s.Material = *patch.Material
	}
	if patch.ColorName != nil {
		s.ColorName = *patch.ColorName
	}
	if patch.ColorCode != nil {
		s.ColorCode = *patch.ColorCode
	}
	if patch.Manufacturer != nil {
		s.Manufacturer = *patch.Manufacturer
	}
	if patch.Diameter != nil {
		d := *patch.Diameter
		s.Diameter = &d
	}
	if patch.PrintTemp != nil {
		n := *patch.PrintTemp
		s.PrintTemp = &n
	}
	if patch.TotalWeight != nil {
		s.TotalWeight = *patch.TotalWeight
	}
	if patch.RemainingPct != nil {
		s.RemainingPct = *patch.RemainingPct
	}
	if patch.PurchaseDate != nil {
		d := *patch.PurchaseDate
		s.PurchaseDate = &d
	}
	if patch.PurchasePrice != nil {
		p := *patch.PurchasePrice
		s.PurchasePrice = &p
	}
	if patch.Status != nil {
		s.Status = *patch.Status
	}
	if patch.SpoolType != nil {
		s.SpoolType = *patch.SpoolType
	}
	if patch.DryerCount != nil {
		s.DryerCount = *patch.DryerCount
	}
	if patch.LastDryingDate != nil {
		d := *patch.LastDryingDate
		s.LastDryingDate = &d
	}
	if patch.StorageLocation != nil {
		s.StorageLocation = *patch.StorageLocation
	}
	return true, nil
}

func (f *fakeSpoolRepo) Delete(scope repository.Scope, id int64) (bool, error) {
	if f.failIDs[id] {
		return false, errors.New("falla simulada del store")
	}
	s, ok := f.spools[id]
	if !ok || s.OwnerID != scope.OwnerID {
		return false, nil
	}
	delete(f.spools, id)
	return true, nil
}

func (f *fakeSpoolRepo) CountByFieldValue(field, value string) (int64, error) {
	var n int64
	for _, s := range f.spools {
		var v string
		switch field {
		case "material":
			v = s.Material
		case "manufacturer":
			v = s.Manufacturer
		case "color_name":
			v = s.ColorName
		case "diameter":
			if s.Diameter != nil {
				v = s.Diameter.String()
			}
		case "storage_location":
			v = s.StorageLocation
		default:
			return 0, errors.New("columna no consultable: " + field)
		}
		if v == value {
			n++
		}
	}
	return n, nil
}

// fakeCatalogRepo implementación en memoria de repository.CatalogRepository.
type fakeCatalogRepo struct {
	nextID int64
	items  map[int64]*entity.CatalogItem
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{items: make(map[int64]*entity.CatalogItem)}
}

func (f *fakeCatalogRepo) Create(item *entity.CatalogItem) (int64, error) {
	f.nextID++
	cp := *item
	cp.ID = f.nextID
	f.items[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeCatalogRepo) GetByID(kind entity.CatalogKind, id int64) (*entity.CatalogItem, error) {
	it, ok := f.items[id]
	if !ok || it.Kind != kind {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (f *fakeCatalogRepo) ListByKind(kind entity.CatalogKind) ([]*entity.CatalogItem, error) {
	ids := make([]int64, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]*entity.CatalogItem, 0)
	for _, id := range ids {
		if it := f.items[id]; it.Kind == kind {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) Update(item *entity.CatalogItem) (bool, error) {
	existing, ok := f.items[item.ID]
	if !ok || existing.Kind != item.Kind {
		return false, nil
	}
	cp := *item
	f.items[item.ID] = &cp
	return true, nil
}

func (f *fakeCatalogRepo) Delete(kind entity.CatalogKind, id int64) (bool, error) {
	it, ok := f.items[id]
	if !ok || it.Kind != kind {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

// fakeUserRepo implementación en memoria de repository.UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// fakeSharingRepo implementación en memoria de repository.SharingRuleRepository.
type fakeSharingRepo struct {
	nextID int64
	rules  []*entity.SharingRule
}

func newFakeSharingRepo() *fakeSharingRepo {
	return &fakeSharingRepo{}
}

func (f *fakeSharingRepo) ListByOwner(ownerID string) ([]*entity.SharingRule, error) {
	out := make([]*entity.SharingRule, 0)
	for _, r := range f.rules {
		if r.OwnerID == ownerID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeSharingRepo) ReplaceForOwner(ownerID string, rules []*entity.SharingRule) error {
	kept := f.rules[:0]
	for _, r := range f.rules {
		if r.OwnerID != ownerID {
			kept = append(kept, r)
		}
	}
	f.rules = kept
	for _, r := range rules {
		f.nextID++
		cp := *r
		cp.ID = f.nextID
		cp.OwnerID = ownerID
		f.rules = append(f.rules, &cp)
	}
	return nil
}

func intID(id int64) string { return strconv.FormatInt(id, 10) }

var (
	_ repository.CatalogRepository     = (*fakeCatalogRepo)(nil)
	_ repository.UserRepository        = (*fakeUserRepo)(nil)
	_ repository.SharingRuleRepository = (*fakeSharingRepo)(nil)
)
