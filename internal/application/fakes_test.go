package application

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/oksasatya/recipe-app/internal/domain/entity"
	repo "github.com/oksasatya/recipe-app/internal/domain/repository"
)

// fakeRecipeRepo stores clones so callers never share pointers with the store,
// mirroring what a real ORM round trip does to object identity.
type fakeRecipeRepo struct {
	mu      sync.Mutex
	recipes map[int64]*entity.Recipe
	nextID  int64
	nextIng int64

	findCalls   int
	findAll     int
	saveCalls   int
	deleteCalls int

	// saveResult, when set, is returned by Save instead of the stored aggregate.
	saveResult *entity.Recipe
	saveErr    error
	findErr    error
	// findResult, when set, is returned by FindByID for any id.
	findResult *entity.Recipe
	// amountScale, when positive, rounds stored amounts the way a fixed-scale column does.
	amountScale int32
	// writeBackIDs copies assigned ingredient ids onto the caller's aggregate.
	writeBackIDs bool
}

func newFakeRecipeRepo(recipes ...*entity.Recipe) *fakeRecipeRepo {
	f := &fakeRecipeRepo{recipes: map[int64]*entity.Recipe{}}
	for _, r := range recipes {
		f.recipes[r.ID] = cloneRecipe(r)
		if r.ID > f.nextID {
			f.nextID = r.ID
		}
		for _, ing := range r.Ingredients {
			if ing.ID > f.nextIng {
				f.nextIng = ing.ID
			}
		}
	}
	return f
}

func (f *fakeRecipeRepo) FindByID(_ context.Context, id int64) (*entity.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.findResult != nil {
		return f.findResult, nil
	}
	r, ok := f.recipes[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return cloneRecipe(r), nil
}

func (f *fakeRecipeRepo) FindAll(_ context.Context) ([]*entity.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findAll++
	ids := make([]int64, 0, len(f.recipes))
	for id := range f.recipes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Recipe, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneRecipe(f.recipes[id]))
	}
	return out, nil
}

func (f *fakeRecipeRepo) Save(_ context.Context, r *entity.Recipe) (*entity.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	if f.saveResult != nil {
		return f.saveResult, nil
	}
	stored := cloneRecipe(r)
	if stored.ID == 0 {
		f.nextID++
		stored.ID = f.nextID
	}
	for i, ing := range stored.Ingredients {
		if ing.ID == 0 {
			f.nextIng++
			ing.ID = f.nextIng
		}
		ing.RecipeID = stored.ID
		if f.amountScale > 0 {
			ing.Amount = ing.Amount.Round(f.amountScale)
		}
		if f.writeBackIDs && r.Ingredients[i] != nil {
			r.Ingredients[i].ID = ing.ID
		}
	}
	if stored.Notes != nil {
		stored.Notes.RecipeID = stored.ID
	}
	f.recipes[stored.ID] = stored
	return cloneRecipe(stored), nil
}

func (f *fakeRecipeRepo) DeleteByID(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if _, ok := f.recipes[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeRepo) stored(id int64) *entity.Recipe {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recipes[id]
}

func cloneRecipe(r *entity.Recipe) *entity.Recipe {
	if r == nil {
		return nil
	}
	c := *r
	c.Image = append([]byte(nil), r.Image...)
	if r.Notes != nil {
		n := *r.Notes
		c.Notes = &n
	}
	c.Ingredients = make([]*entity.Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		i := *ing
		if ing.UnitOfMeasure != nil {
			u := *ing.UnitOfMeasure
			i.UnitOfMeasure = &u
		}
		c.Ingredients = append(c.Ingredients, &i)
	}
	c.Categories = make([]*entity.Category, 0, len(r.Categories))
	for _, cat := range r.Categories {
		cc := *cat
		c.Categories = append(c.Categories, &cc)
	}
	return &c
}

type fakeUnitRepo struct {
	units map[int64]*entity.UnitOfMeasure
	calls int
}

func newFakeUnitRepo(units ...*entity.UnitOfMeasure) *fakeUnitRepo {
	f := &fakeUnitRepo{units: map[int64]*entity.UnitOfMeasure{}}
	for _, u := range units {
		f.units[u.ID] = u
	}
	return f
}

func (f *fakeUnitRepo) FindByID(_ context.Context, id int64) (*entity.UnitOfMeasure, error) {
	f.calls++
	u, ok := f.units[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUnitRepo) FindByDescription(_ context.Context, d string) (*entity.UnitOfMeasure, error) {
	for _, u := range f.units {
		if u.Description == d {
			c := *u
			return &c, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUnitRepo) FindAll(_ context.Context) ([]*entity.UnitOfMeasure, error) {
	f.calls++
	ids := make([]int64, 0, len(f.units))
	for id := range f.units {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.UnitOfMeasure, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.units[id])
	}
	return out, nil
}

func (f *fakeUnitRepo) Save(_ context.Context, u *entity.UnitOfMeasure) error {
	if u.ID == 0 {
		u.ID = int64(len(f.units) + 1)
	}
	f.units[u.ID] = u
	return nil
}

type fakeCategoryRepo struct {
	cats map[int64]*entity.Category
}

func newFakeCategoryRepo(cats ...*entity.Category) *fakeCategoryRepo {
	f := &fakeCategoryRepo{cats: map[int64]*entity.Category{}}
	for _, c := range cats {
		f.cats[c.ID] = c
	}
	return f
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	c, ok := f.cats[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cc := *c
	return &cc, nil
}

func (f *fakeCategoryRepo) FindByDescription(_ context.Context, d string) (*entity.Category, error) {
	for _, c := range f.cats {
		if c.Description == d {
			return c, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.cats))
	for _, c := range f.cats {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryRepo) Save(_ context.Context, c *entity.Category) error {
	f.cats[c.ID] = c
	return nil
}

type countingTx struct {
	calls int
}

func (t *countingTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type recordingPublisher struct {
	mu     sync.Mutex
	bodies []any
	err    error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.bodies = append(p.bodies, body)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.bodies)
}

type fakeImageStore struct {
	paths []string
	data  [][]byte
	err   error
}

func (s *fakeImageStore) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.paths = append(s.paths, objectPath)
	s.data = append(s.data, b)
	return "https://storage.googleapis.com/bucket/" + objectPath, nil
}

var errBoom = errors.New("boom")
