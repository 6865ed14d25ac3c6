// Package memory implementa los repositorios en memoria. Sirve para correr
// el servicio sin base de datos (DB_DRIVER=memory) y como doble en los tests.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

type state struct {
	companies   map[string]entity.Company
	users       map[string]entity.User
	managers    map[string]entity.Manager
	usernames   map[string]string // username -> account id
	memberships []entity.Membership
}

func newState() state {
	return state{
		companies: map[string]entity.Company{},
		users:     map[string]entity.User{},
		managers:  map[string]entity.Manager{},
		usernames: map[string]string{},
	}
}

func (s state) clone() state {
	out := newState()
	for k, v := range s.companies {
		out.companies[k] = v
	}
	for k, v := range s.users {
		out.users[k] = v
	}
	for k, v := range s.managers {
		out.managers[k] = v
	}
	for k, v := range s.usernames {
		out.usernames[k] = v
	}
	out.memberships = append([]entity.Membership(nil), s.memberships...)
	return out
}

// Store guarda todas las tablas detrás de un único mutex.
type Store struct {
	mu sync.Mutex
	st state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

var _ repository.TxRunner = (*Store)(nil)

// Repositories devuelve los repositorios que toman el lock en cada llamada.
func (s *Store) Repositories() repository.Repositories {
	return s.repos(false)
}

// Run ejecuta fn con el store bloqueado; si fn falla se restaura el estado previo.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(s.repos(true)); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) repos(inTx bool) repository.Repositories {
	v := &view{store: s, inTx: inTx}
	return repository.Repositories{
		Accounts:    (*accountRepo)(v),
		Companies:   (*companyRepo)(v),
		Users:       (*userRepo)(v),
		Managers:    (*managerRepo)(v),
		Memberships: (*membershipRepo)(v),
	}
}

// view es el acceso al estado; dentro de Run el lock ya está tomado.
type view struct {
	store *Store
	inTx  bool
}

func (v *view) lock() func() {
	if v.inTx {
		return func() {}
	}
	v.store.mu.Lock()
	return v.store.mu.Unlock
}

func (v *view) st() *state { return &v.store.st }

func duplicate(what string) error {
	return fmt.Errorf("%w: %s", domain.ErrDuplicate, what)
}

// claimUsername reserva username para id dentro del estado.
func (s *state) claimUsername(username, id string) error {
	if username == "" {
		return nil
	}
	if holder, ok := s.usernames[username]; ok && holder != id {
		return duplicate("username " + username)
	}
	s.usernames[username] = id
	return nil
}

func (s *state) account(id string) (entity.Account, bool) {
	if c, ok := s.companies[id]; ok {
		return c.Account, true
	}
	if u, ok := s.users[id]; ok {
		return u.Account, true
	}
	if m, ok := s.managers[id]; ok {
		return m.Account, true
	}
	return entity.Account{}, false
}

func (s *state) idTaken(id string) bool {
	_, ok := s.account(id)
	return ok
}

type accountRepo view

func (r *accountRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	v := (*view)(r)
	defer v.lock()()
	_, ok := v.st().usernames[username]
	return ok, nil
}

func (r *accountRepo) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	v := (*view)(r)
	defer v.lock()()
	id, ok := v.st().usernames[username]
	if !ok {
		return nil, nil
	}
	a, ok := v.st().account(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

type companyRepo view

func (r *companyRepo) Create(_ context.Context, c *entity.Company) error {
	v := (*view)(r)
	defer v.lock()()
	st := v.st()
	if st.idTaken(c.ID) {
		return duplicate("account id " + c.ID)
	}
	if err := st.claimUsername(c.Username, c.ID); err != nil {
		return err
	}
	st.companies[c.ID] = *c
	return nil
}

func (r *companyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	v := (*view)(r)
	defer v.lock()()
	c, ok := v.st().companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *companyRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Company, error) {
	v := (*view)(r)
	defer v.lock()()
	var out []*entity.Company
	for _, id := range ids {
		if c, ok := v.st().companies[id]; ok {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *companyRepo) FindByName(_ context.Context, name string) (*entity.Company, error) {
	v := (*view)(r)
	defer v.lock()()
	var found *entity.Company
	for _, c := range v.st().companies {
		if !strings.EqualFold(c.Name, name) {
			continue
		}
		if found == nil || c.RegisteredAt.Before(found.RegisteredAt) ||
			(c.RegisteredAt.Equal(found.RegisteredAt) && c.ID < found.ID) {
			c := c
			found = &c
		}
	}
	return found, nil
}

func (r *companyRepo) AssignPlan(_ context.Context, companyID, planID string) (bool, error) {
	v := (*view)(r)
	defer v.lock()()
	c, ok := v.st().companies[companyID]
	if !ok {
		return false, nil
	}
	c.PlanID = &planID
	v.st().companies[companyID] = c
	return true, nil
}

type userRepo view

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	v := (*view)(r)
	defer v.lock()()
	st := v.st()
	if st.idTaken(u.ID) {
		return duplicate("account id " + u.ID)
	}
	for _, other := range st.users {
		if other.Document == u.Document {
			return duplicate("document " + u.Document.Type + " " + u.Document.ID)
		}
	}
	if err := st.claimUsername(u.Username, u.ID); err != nil {
		return err
	}
	st.users[u.ID] = *u
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	v := (*view)(r)
	defer v.lock()()
	u, ok := v.st().users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepo) GetByDocument(_ context.Context, doc entity.Document) (*entity.User, error) {
	v := (*view)(r)
	defer v.lock()()
	for _, u := range v.st().users {
		if u.Document == doc {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	v := (*view)(r)
	defer v.lock()()
	id, ok := v.st().usernames[username]
	if !ok {
		return nil, nil
	}
	u, ok := v.st().users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// Update conserva documento, tipo y fecha de registro del usuario guardado.
func (r *userRepo) Update(_ context.Context, u *entity.User) error {
	v := (*view)(r)
	defer v.lock()()
	st := v.st()
	cur, ok := st.users[u.ID]
	if !ok {
		return domain.NotFound("user not found")
	}
	if err := st.claimUsername(u.Username, u.ID); err != nil {
		return err
	}
	if cur.Username != "" && cur.Username != u.Username {
		delete(st.usernames, cur.Username)
	}
	next := *u
	next.Document = cur.Document
	next.Kind = cur.Kind
	next.RegisteredAt = cur.RegisteredAt
	st.users[u.ID] = next
	return nil
}

type managerRepo view

func (r *managerRepo) Create(_ context.Context, m *entity.Manager) error {
	v := (*view)(r)
	defer v.lock()()
	st := v.st()
	if st.idTaken(m.ID) {
		return duplicate("account id " + m.ID)
	}
	if err := st.claimUsername(m.Username, m.ID); err != nil {
		return err
	}
	st.managers[m.ID] = *m
	return nil
}

func (r *managerRepo) GetByID(_ context.Context, id string) (*entity.Manager, error) {
	v := (*view)(r)
	defer v.lock()()
	m, ok := v.st().managers[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

type membershipRepo view

func (r *membershipRepo) Link(_ context.Context, m *entity.Membership) error {
	v := (*view)(r)
	defer v.lock()()
	st := v.st()
	for _, cur := range st.memberships {
		if cur.CompanyID == m.CompanyID && cur.UserID == m.UserID && cur.Document == m.Document {
			m.CreatedAt = cur.CreatedAt
			return nil
		}
	}
	if _, ok := st.companies[m.CompanyID]; !ok {
		return fmt.Errorf("link membership: company %s does not exist", m.CompanyID)
	}
	if _, ok := st.users[m.UserID]; !ok {
		return fmt.Errorf("link membership: user %s does not exist", m.UserID)
	}
	st.memberships = append(st.memberships, *m)
	return nil
}

func (r *membershipRepo) FindByDocument(_ context.Context, doc entity.Document) (*entity.Membership, error) {
	v := (*view)(r)
	defer v.lock()()
	for _, m := range v.st().memberships {
		if m.Document == doc {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *membershipRepo) CompaniesFor(_ context.Context, userID string) ([]*entity.Company, error) {
	v := (*view)(r)
	defer v.lock()()
	st := v.st()
	out := make([]*entity.Company, 0)
	seen := map[string]bool{}
	for _, m := range st.memberships {
		if m.UserID != userID || seen[m.CompanyID] {
			continue
		}
		seen[m.CompanyID] = true
		if c, ok := st.companies[m.CompanyID]; ok {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *membershipRepo) IsMember(_ context.Context, companyID, userID string) (bool, error) {
	v := (*view)(r)
	defer v.lock()()
	for _, m := range v.st().memberships {
		if m.CompanyID == companyID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
