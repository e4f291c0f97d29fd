// Package mocks provides mock implementations of ports for testing.
package mocks

import (
	"context"
	"sync"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"
)

// --- UserRepository Mock ---

// UserRepository is a mock implementation of repository.UserRepository.
// Like the real store it keeps a unique index on the linked Facebook user id
// and rejects writes that would double-link one.
type UserRepository struct {
	mu sync.RWMutex

	// Storage
	users      map[string]*model.User // by ID
	byUsername map[string]string      // username -> ID
	byFacebook map[string]string      // facebook user id -> ID

	// Call tracking
	Calls struct {
		Create               int
		Update               int
		FindByID             int
		FindByUsername       int
		FindByFacebookUserID int
		ExistsByUsername     int
	}

	// Error injection
	Errors struct {
		Create               error
		Update               error
		FindByID             error
		FindByUsername       error
		FindByFacebookUserID error
		ExistsByUsername     error
	}
}

// NewUserRepository creates a new mock UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[string]*model.User),
		byUsername: make(map[string]string),
		byFacebook: make(map[string]string),
	}
}

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Create++

	if m.Errors.Create != nil {
		return m.Errors.Create
	}

	id := user.ID().String()

	if _, taken := m.byUsername[user.Username()]; taken {
		return repository.ErrDuplicateUsername
	}
	if user.HasFacebook() {
		fbID := user.Facebook().MustGet().UserID()
		if owner, taken := m.byFacebook[fbID]; taken && owner != id {
			return repository.ErrDuplicateFacebookID
		}
	}

	m.users[id] = user
	m.byUsername[user.Username()] = id
	if user.HasFacebook() {
		m.byFacebook[user.Facebook().MustGet().UserID()] = id
	}

	return nil
}

func (m *UserRepository) Update(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Update++

	if m.Errors.Update != nil {
		return m.Errors.Update
	}

	id := user.ID().String()

	if user.HasFacebook() {
		fbID := user.Facebook().MustGet().UserID()
		if owner, taken := m.byFacebook[fbID]; taken && owner != id {
			return repository.ErrDuplicateFacebookID
		}
	}

	// Drop stale indexes from the previous version
	if old, ok := m.users[id]; ok {
		delete(m.byUsername, old.Username())
		if old.HasFacebook() {
			delete(m.byFacebook, old.Facebook().MustGet().UserID())
		}
	}

	m.users[id] = user
	m.byUsername[user.Username()] = id
	if user.HasFacebook() {
		m.byFacebook[user.Facebook().MustGet().UserID()] = id
	}

	return nil
}

func (m *UserRepository) FindByID(ctx context.Context, id types.ID) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByID++

	if m.Errors.FindByID != nil {
		return nil, m.Errors.FindByID
	}

	user, ok := m.users[id.String()]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByUsername++

	if m.Errors.FindByUsername != nil {
		return nil, m.Errors.FindByUsername
	}

	id, ok := m.byUsername[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return m.users[id], nil
}

func (m *UserRepository) FindByFacebookUserID(ctx context.Context, facebookUserID string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByFacebookUserID++

	if m.Errors.FindByFacebookUserID != nil {
		return nil, m.Errors.FindByFacebookUserID
	}

	id, ok := m.byFacebook[facebookUserID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return m.users[id], nil
}

func (m *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.ExistsByUsername++

	if m.Errors.ExistsByUsername != nil {
		return false, m.Errors.ExistsByUsername
	}

	_, ok := m.byUsername[username]
	return ok, nil
}

// Reset clears all data and call counts.
func (m *UserRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = make(map[string]*model.User)
	m.byUsername = make(map[string]string)
	m.byFacebook = make(map[string]string)
	m.Calls = struct {
		Create               int
		Update               int
		FindByID             int
		FindByUsername       int
		FindByFacebookUserID int
		ExistsByUsername     int
	}{}
	m.Errors = struct {
		Create               error
		Update               error
		FindByID             error
		FindByUsername       error
		FindByFacebookUserID error
		ExistsByUsername     error
	}{}
}

// Seed adds a user directly to the mock storage.
func (m *UserRepository) Seed(user *model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := user.ID().String()
	m.users[id] = user
	m.byUsername[user.Username()] = id
	if user.HasFacebook() {
		m.byFacebook[user.Facebook().MustGet().UserID()] = id
	}
}

// --- GroupRepository Mock ---

// GroupRepository is a mock implementation of repository.GroupRepository.
type GroupRepository struct {
	mu sync.RWMutex

	// Storage
	groups   map[string]*model.Group // by ID
	byMember map[string][]string     // member ID -> []group ID

	// Call tracking
	Calls struct {
		Create         int
		Update         int
		FindByID       int
		FindByMemberID int
	}

	// Error injection
	Errors struct {
		Create         error
		Update         error
		FindByID       error
		FindByMemberID error
	}
}

// NewGroupRepository creates a new mock GroupRepository.
func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		groups:   make(map[string]*model.Group),
		byMember: make(map[string][]string),
	}
}

func (m *GroupRepository) Create(ctx context.Context, group *model.Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Create++

	if m.Errors.Create != nil {
		return m.Errors.Create
	}

	m.index(group)
	return nil
}

func (m *GroupRepository) Update(ctx context.Context, group *model.Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Update++

	if m.Errors.Update != nil {
		return m.Errors.Update
	}

	m.unindex(group.ID().String())
	m.index(group)
	return nil
}

func (m *GroupRepository) FindByID(ctx context.Context, id types.ID) (*model.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByID++

	if m.Errors.FindByID != nil {
		return nil, m.Errors.FindByID
	}

	group, ok := m.groups[id.String()]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return group, nil
}

func (m *GroupRepository) FindByMemberID(ctx context.Context, userID types.ID) ([]*model.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByMemberID++

	if m.Errors.FindByMemberID != nil {
		return nil, m.Errors.FindByMemberID
	}

	var result []*model.Group
	for _, id := range m.byMember[userID.String()] {
		result = append(result, m.groups[id])
	}
	return result, nil
}

func (m *GroupRepository) index(group *model.Group) {
	id := group.ID().String()
	m.groups[id] = group
	for _, member := range group.MemberIDs() {
		m.byMember[member.String()] = append(m.byMember[member.String()], id)
	}
}

func (m *GroupRepository) unindex(id string) {
	old, ok := m.groups[id]
	if !ok {
		return
	}
	for _, member := range old.MemberIDs() {
		key := member.String()
		ids := m.byMember[key][:0]
		for _, gid := range m.byMember[key] {
			if gid != id {
				ids = append(ids, gid)
			}
		}
		m.byMember[key] = ids
	}
}

// Reset clears all data and call counts.
func (m *GroupRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups = make(map[string]*model.Group)
	m.byMember = make(map[string][]string)
	m.Calls = struct {
		Create         int
		Update         int
		FindByID       int
		FindByMemberID int
	}{}
	m.Errors = struct {
		Create         error
		Update         error
		FindByID       error
		FindByMemberID error
	}{}
}

// Seed adds a group directly to the mock storage.
func (m *GroupRepository) Seed(group *model.Group) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.index(group)
}

// --- ChallengeRepository Mock ---

// ChallengeRepository is a mock implementation of repository.ChallengeRepository.
type ChallengeRepository struct {
	mu sync.RWMutex

	// Storage
	challenges map[string]*model.Challenge // by ID
	byCreator  map[string][]string         // creating user ID -> []ID

	// Call tracking
	Calls struct {
		Create               int
		Update               int
		FindByID             int
		FindByCreatingUserID int
	}

	// Error injection
	Errors struct {
		Create               error
		Update               error
		FindByID             error
		FindByCreatingUserID error
	}
}

// NewChallengeRepository creates a new mock ChallengeRepository.
func NewChallengeRepository() *ChallengeRepository {
	return &ChallengeRepository{
		challenges: make(map[string]*model.Challenge),
		byCreator:  make(map[string][]string),
	}
}

func (m *ChallengeRepository) Create(ctx context.Context, challenge *model.Challenge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Create++

	if m.Errors.Create != nil {
		return m.Errors.Create
	}

	id := challenge.ID().String()
	creator := challenge.CreatingUserID().String()

	m.challenges[id] = challenge
	m.byCreator[creator] = append(m.byCreator[creator], id)

	return nil
}

func (m *ChallengeRepository) Update(ctx context.Context, challenge *model.Challenge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Update++

	if m.Errors.Update != nil {
		return m.Errors.Update
	}

	m.challenges[challenge.ID().String()] = challenge
	return nil
}

func (m *ChallengeRepository) FindByID(ctx context.Context, id types.ID) (*model.Challenge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByID++

	if m.Errors.FindByID != nil {
		return nil, m.Errors.FindByID
	}

	challenge, ok := m.challenges[id.String()]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return challenge, nil
}

func (m *ChallengeRepository) FindByCreatingUserID(ctx context.Context, userID types.ID) ([]*model.Challenge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByCreatingUserID++

	if m.Errors.FindByCreatingUserID != nil {
		return nil, m.Errors.FindByCreatingUserID
	}

	var result []*model.Challenge
	for _, id := range m.byCreator[userID.String()] {
		result = append(result, m.challenges[id])
	}
	return result, nil
}

// Reset clears all data and call counts.
func (m *ChallengeRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.challenges = make(map[string]*model.Challenge)
	m.byCreator = make(map[string][]string)
	m.Calls = struct {
		Create               int
		Update               int
		FindByID             int
		FindByCreatingUserID int
	}{}
	m.Errors = struct {
		Create               error
		Update               error
		FindByID             error
		FindByCreatingUserID error
	}{}
}

// Seed adds a challenge directly to the mock storage.
func (m *ChallengeRepository) Seed(challenge *model.Challenge) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := challenge.ID().String()
	creator := challenge.CreatingUserID().String()
	m.challenges[id] = challenge
	m.byCreator[creator] = append(m.byCreator[creator], id)
}
