package testutil

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/belajarhosting/platform/internal/domain/automation"
	"github.com/belajarhosting/platform/internal/domain/blog"
	"github.com/belajarhosting/platform/internal/domain/bookmark"
	"github.com/belajarhosting/platform/internal/domain/class"
	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/domain/database"
	"github.com/belajarhosting/platform/internal/domain/hosting"
	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/domain/user"
	"github.com/belajarhosting/platform/internal/domain/vps"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	Users       map[int64]*user.User
	EmailIndex  map[string]*user.User
	NextID      int64
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:      make(map[int64]*user.User),
		EmailIndex: make(map[string]*user.User),
		NextID:     1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	u.ID = m.NextID
	m.NextID++
	u.CreatedAt = time.Now()
	m.Users[u.ID] = u
	m.EmailIndex[u.Email] = u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.EmailIndex[email]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Users[u.ID]; !ok {
		return fmt.Errorf("user not found")
	}
	m.Users[u.ID] = u
	m.EmailIndex[u.Email] = u
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	if u, ok := m.Users[id]; ok {
		delete(m.EmailIndex, u.Email)
		delete(m.Users, id)
	}
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, filter user.Filter, limit, offset int) ([]*user.User, int64, error) {
	var result []*user.User
	for _, u := range m.Users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Verified != nil && u.IsVerified != *filter.Verified {
			continue
		}
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// MockVPSRepository is a mock implementation of vps.Repository
type MockVPSRepository struct {
	Instances   map[int64]*vps.Instance
	NextID      int64
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockVPSRepository() *MockVPSRepository {
	return &MockVPSRepository{
		Instances: make(map[int64]*vps.Instance),
		NextID:    1,
	}
}

func (m *MockVPSRepository) Create(ctx context.Context, inst *vps.Instance) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	inst.ID = m.NextID
	m.NextID++
	inst.CreatedAt = time.Now()
	m.Instances[inst.ID] = inst
	return nil
}

func (m *MockVPSRepository) GetByID(ctx context.Context, userID, id int64) (*vps.Instance, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	inst, ok := m.Instances[id]
	if !ok || inst.UserID != userID {
		return nil, fmt.Errorf("vps instance not found")
	}
	return inst, nil
}

func (m *MockVPSRepository) GetAnyByID(ctx context.Context, id int64) (*vps.Instance, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	inst, ok := m.Instances[id]
	if !ok {
		return nil, fmt.Errorf("vps instance not found")
	}
	return inst, nil
}

func (m *MockVPSRepository) Update(ctx context.Context, inst *vps.Instance) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Instances[inst.ID]; !ok {
		return fmt.Errorf("vps instance not found")
	}
	m.Instances[inst.ID] = inst
	return nil
}

func (m *MockVPSRepository) Delete(ctx context.Context, userID, id int64) error {
	inst, ok := m.Instances[id]
	if !ok || inst.UserID != userID {
		return fmt.Errorf("vps instance not found")
	}
	delete(m.Instances, id)
	return nil
}

func (m *MockVPSRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*vps.Instance, int64, error) {
	var result []*vps.Instance
	for _, inst := range m.Instances {
		if inst.UserID == userID {
			result = append(result, inst)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// MockHostingRepository is a mock implementation of hosting.Repository
type MockHostingRepository struct {
	Sites       map[int64]*hosting.Site
	NextID      int64
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockHostingRepository() *MockHostingRepository {
	return &MockHostingRepository{
		Sites:  make(map[int64]*hosting.Site),
		NextID: 1,
	}
}

func (m *MockHostingRepository) Create(ctx context.Context, site *hosting.Site) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	site.ID = m.NextID
	m.NextID++
	site.CreatedAt = time.Now()
	m.Sites[site.ID] = site
	return nil
}

func (m *MockHostingRepository) GetByID(ctx context.Context, userID, id int64) (*hosting.Site, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	site, ok := m.Sites[id]
	if !ok || site.UserID != userID {
		return nil, fmt.Errorf("hosting site not found")
	}
	return site, nil
}

func (m *MockHostingRepository) GetAnyByID(ctx context.Context, id int64) (*hosting.Site, error) {
	site, ok := m.Sites[id]
	if !ok {
		return nil, fmt.Errorf("hosting site not found")
	}
	return site, nil
}

func (m *MockHostingRepository) Update(ctx context.Context, site *hosting.Site) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Sites[site.ID]; !ok {
		return fmt.Errorf("hosting site not found")
	}
	m.Sites[site.ID] = site
	return nil
}

func (m *MockHostingRepository) Delete(ctx context.Context, userID, id int64) error {
	site, ok := m.Sites[id]
	if !ok || site.UserID != userID {
		return fmt.Errorf("hosting site not found")
	}
	delete(m.Sites, id)
	return nil
}

func (m *MockHostingRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*hosting.Site, int64, error) {
	var result []*hosting.Site
	for _, site := range m.Sites {
		if site.UserID == userID {
			result = append(result, site)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// MockDatabaseRepository is a mock implementation of database.Repository
type MockDatabaseRepository struct {
	Instances   map[int64]*database.Instance
	NextID      int64
	CreateError error
	GetError    error
}

func NewMockDatabaseRepository() *MockDatabaseRepository {
	return &MockDatabaseRepository{
		Instances: make(map[int64]*database.Instance),
		NextID:    1,
	}
}

func (m *MockDatabaseRepository) Create(ctx context.Context, inst *database.Instance) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	inst.ID = m.NextID
	m.NextID++
	inst.CreatedAt = time.Now()
	m.Instances[inst.ID] = inst
	return nil
}

func (m *MockDatabaseRepository) GetByID(ctx context.Context, userID, id int64) (*database.Instance, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	inst, ok := m.Instances[id]
	if !ok || inst.UserID != userID {
		return nil, fmt.Errorf("database instance not found")
	}
	return inst, nil
}

func (m *MockDatabaseRepository) GetAnyByID(ctx context.Context, id int64) (*database.Instance, error) {
	inst, ok := m.Instances[id]
	if !ok {
		return nil, fmt.Errorf("database instance not found")
	}
	return inst, nil
}

func (m *MockDatabaseRepository) Update(ctx context.Context, inst *database.Instance) error {
	if _, ok := m.Instances[inst.ID]; !ok {
		return fmt.Errorf("database instance not found")
	}
	m.Instances[inst.ID] = inst
	return nil
}

func (m *MockDatabaseRepository) Delete(ctx context.Context, userID, id int64) error {
	inst, ok := m.Instances[id]
	if !ok || inst.UserID != userID {
		return fmt.Errorf("database instance not found")
	}
	delete(m.Instances, id)
	return nil
}

func (m *MockDatabaseRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*database.Instance, int64, error) {
	var result []*database.Instance
	for _, inst := range m.Instances {
		if inst.UserID == userID {
			result = append(result, inst)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// MockAutomationRepository is a mock implementation of automation.Repository
type MockAutomationRepository struct {
	Instances   map[int64]*automation.Instance
	NextID      int64
	CreateError error
	GetError    error
}

func NewMockAutomationRepository() *MockAutomationRepository {
	return &MockAutomationRepository{
		Instances: make(map[int64]*automation.Instance),
		NextID:    1,
	}
}

func (m *MockAutomationRepository) Create(ctx context.Context, inst *automation.Instance) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	inst.ID = m.NextID
	m.NextID++
	inst.CreatedAt = time.Now()
	m.Instances[inst.ID] = inst
	return nil
}

func (m *MockAutomationRepository) GetByID(ctx context.Context, userID, id int64) (*automation.Instance, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	inst, ok := m.Instances[id]
	if !ok || inst.UserID != userID {
		return nil, fmt.Errorf("automation instance not found")
	}
	return inst, nil
}

func (m *MockAutomationRepository) GetBySubdomain(ctx context.Context, subdomain string) (*automation.Instance, error) {
	for _, inst := range m.Instances {
		if inst.Subdomain == subdomain {
			return inst, nil
		}
	}
	return nil, fmt.Errorf("automation instance not found")
}

func (m *MockAutomationRepository) GetAnyByID(ctx context.Context, id int64) (*automation.Instance, error) {
	inst, ok := m.Instances[id]
	if !ok {
		return nil, fmt.Errorf("automation instance not found")
	}
	return inst, nil
}

func (m *MockAutomationRepository) Update(ctx context.Context, inst *automation.Instance) error {
	if _, ok := m.Instances[inst.ID]; !ok {
		return fmt.Errorf("automation instance not found")
	}
	m.Instances[inst.ID] = inst
	return nil
}

func (m *MockAutomationRepository) Delete(ctx context.Context, userID, id int64) error {
	inst, ok := m.Instances[id]
	if !ok || inst.UserID != userID {
		return fmt.Errorf("automation instance not found")
	}
	delete(m.Instances, id)
	return nil
}

func (m *MockAutomationRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*automation.Instance, int64, error) {
	var result []*automation.Instance
	for _, inst := range m.Instances {
		if inst.UserID == userID {
			result = append(result, inst)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	Orders      map[int64]*order.Order
	NextID      int64
	CreateError error
	GetError    error
	UpdateError error
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		Orders: make(map[int64]*order.Order),
		NextID: 1,
	}
}

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	o.ID = m.NextID
	m.NextID++
	o.CreatedAt = time.Now()
	m.Orders[o.ID] = o
	return nil
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	o, ok := m.Orders[id]
	if !ok {
		return nil, fmt.Errorf("order not found")
	}
	return o, nil
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Orders[o.ID]; !ok {
		return fmt.Errorf("order not found")
	}
	m.Orders[o.ID] = o
	return nil
}

func (m *MockOrderRepository) List(ctx context.Context, filter order.Filter, limit, offset int) ([]*order.Order, int64, error) {
	var result []*order.Order
	for _, o := range m.Orders {
		if filter.UserID != 0 && o.UserID != filter.UserID {
			continue
		}
		if filter.ServiceType != "" && o.ServiceType != filter.ServiceType {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

func (m *MockOrderRepository) ListDue(ctx context.Context, limit int) ([]*order.Order, error) {
	now := time.Now()
	var result []*order.Order
	for _, o := range m.Orders {
		if o.Status == order.StatusActive && o.PaidUntil != nil && o.PaidUntil.Before(now) {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// MockCreditRepository is a mock implementation of credit.Repository
type MockCreditRepository struct {
	Balances     map[int64]int64
	Transactions map[int64]*credit.Transaction
	NextID       int64
	BalanceError error
	CreateError  error
}

func NewMockCreditRepository() *MockCreditRepository {
	return &MockCreditRepository{
		Balances:     make(map[int64]int64),
		Transactions: make(map[int64]*credit.Transaction),
		NextID:       1,
	}
}

func (m *MockCreditRepository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	if m.BalanceError != nil {
		return 0, m.BalanceError
	}
	return m.Balances[userID], nil
}

func (m *MockCreditRepository) AddBalance(ctx context.Context, userID, delta int64) error {
	m.Balances[userID] += delta
	return nil
}

func (m *MockCreditRepository) DeductBalance(ctx context.Context, userID, amountIDR int64) error {
	if m.BalanceError != nil {
		return m.BalanceError
	}
	if m.Balances[userID] < amountIDR {
		return errors.InsufficientCredit("Credit balance is too low for this order")
	}
	m.Balances[userID] -= amountIDR
	return nil
}

func (m *MockCreditRepository) CreateTransaction(ctx context.Context, tx *credit.Transaction) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	tx.ID = m.NextID
	m.NextID++
	tx.CreatedAt = time.Now()
	m.Transactions[tx.ID] = tx
	return nil
}

func (m *MockCreditRepository) GetTransaction(ctx context.Context, id int64) (*credit.Transaction, error) {
	tx, ok := m.Transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction not found")
	}
	return tx, nil
}

func (m *MockCreditRepository) UpdateTransaction(ctx context.Context, tx *credit.Transaction) error {
	if _, ok := m.Transactions[tx.ID]; !ok {
		return fmt.Errorf("transaction not found")
	}
	m.Transactions[tx.ID] = tx
	return nil
}

func (m *MockCreditRepository) SettleTopup(ctx context.Context, tx *credit.Transaction) error {
	stored, ok := m.Transactions[tx.ID]
	if !ok {
		return fmt.Errorf("transaction not found")
	}
	if stored.Status != credit.StatusPending {
		return errors.InvalidState("Only pending top-ups can be settled")
	}
	stored.Status = credit.StatusPaid
	m.Balances[stored.UserID] += stored.AmountIDR
	tx.Status = credit.StatusPaid
	return nil
}

func (m *MockCreditRepository) ListTransactions(ctx context.Context, filter credit.Filter, limit, offset int) ([]*credit.Transaction, int64, error) {
	var result []*credit.Transaction
	for _, tx := range m.Transactions {
		if filter.UserID != 0 && tx.UserID != filter.UserID {
			continue
		}
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Status != "" && tx.Status != filter.Status {
			continue
		}
		result = append(result, tx)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// MockBlogRepository is a mock implementation of blog.Repository
type MockBlogRepository struct {
	Posts       map[int64]*blog.Post
	NextID      int64
	CreateError error
}

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{
		Posts:  make(map[int64]*blog.Post),
		NextID: 1,
	}
}

func (m *MockBlogRepository) Create(ctx context.Context, post *blog.Post) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	post.ID = m.NextID
	m.NextID++
	post.CreatedAt = time.Now()
	m.Posts[post.ID] = post
	return nil
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id int64) (*blog.Post, error) {
	post, ok := m.Posts[id]
	if !ok {
		return nil, fmt.Errorf("post not found")
	}
	return post, nil
}

func (m *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	for _, post := range m.Posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, fmt.Errorf("post not found")
}

func (m *MockBlogRepository) Update(ctx context.Context, post *blog.Post) error {
	if _, ok := m.Posts[post.ID]; !ok {
		return fmt.Errorf("post not found")
	}
	m.Posts[post.ID] = post
	return nil
}

func (m *MockBlogRepository) Delete(ctx context.Context, id int64) error {
	delete(m.Posts, id)
	return nil
}

func (m *MockBlogRepository) List(ctx context.Context, filter blog.Filter, limit, offset int) ([]*blog.Post, int64, error) {
	var result []*blog.Post
	for _, post := range m.Posts {
		if filter.PublishedOnly && !post.Published {
			continue
		}
		if filter.Category != "" && post.Category != filter.Category {
			continue
		}
		result = append(result, post)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// MockBookmarkRepository is a mock implementation of bookmark.Repository
type MockBookmarkRepository struct {
	Bookmarks   map[int64]*bookmark.Bookmark
	NextID      int64
	CreateError error
}

func NewMockBookmarkRepository() *MockBookmarkRepository {
	return &MockBookmarkRepository{
		Bookmarks: make(map[int64]*bookmark.Bookmark),
		NextID:    1,
	}
}

func (m *MockBookmarkRepository) Create(ctx context.Context, b *bookmark.Bookmark) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	b.ID = m.NextID
	m.NextID++
	b.CreatedAt = time.Now()
	m.Bookmarks[b.ID] = b
	return nil
}

func (m *MockBookmarkRepository) GetByID(ctx context.Context, userID, id int64) (*bookmark.Bookmark, error) {
	b, ok := m.Bookmarks[id]
	if !ok || b.UserID != userID {
		return nil, fmt.Errorf("bookmark not found")
	}
	return b, nil
}

func (m *MockBookmarkRepository) Update(ctx context.Context, b *bookmark.Bookmark) error {
	if _, ok := m.Bookmarks[b.ID]; !ok {
		return fmt.Errorf("bookmark not found")
	}
	m.Bookmarks[b.ID] = b
	return nil
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, userID, id int64) error {
	b, ok := m.Bookmarks[id]
	if !ok || b.UserID != userID {
		return fmt.Errorf("bookmark not found")
	}
	delete(m.Bookmarks, id)
	return nil
}

func (m *MockBookmarkRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*bookmark.Bookmark, int64, error) {
	var result []*bookmark.Bookmark
	for _, b := range m.Bookmarks {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// MockClassRepository is a mock implementation of class.Repository
type MockClassRepository struct {
	Classes     map[int64]*class.Class
	NextID      int64
	CreateError error
}

func NewMockClassRepository() *MockClassRepository {
	return &MockClassRepository{
		Classes: make(map[int64]*class.Class),
		NextID:  1,
	}
}

func (m *MockClassRepository) Create(ctx context.Context, c *class.Class) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	c.ID = m.NextID
	m.NextID++
	c.CreatedAt = time.Now()
	m.Classes[c.ID] = c
	return nil
}

func (m *MockClassRepository) GetByID(ctx context.Context, id int64) (*class.Class, error) {
	c, ok := m.Classes[id]
	if !ok {
		return nil, fmt.Errorf("class not found")
	}
	return c, nil
}

func (m *MockClassRepository) Update(ctx context.Context, c *class.Class) error {
	if _, ok := m.Classes[c.ID]; !ok {
		return fmt.Errorf("class not found")
	}
	m.Classes[c.ID] = c
	return nil
}

func (m *MockClassRepository) Delete(ctx context.Context, id int64) error {
	delete(m.Classes, id)
	return nil
}

func (m *MockClassRepository) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*class.Class, int64, error) {
	var result []*class.Class
	for _, c := range m.Classes {
		if publishedOnly && !c.Published {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// MockDomainRepository is a mock implementation of domainname.Repository
type MockDomainRepository struct {
	Registered map[string]bool
	CheckError error
}

func NewMockDomainRepository() *MockDomainRepository {
	return &MockDomainRepository{
		Registered: make(map[string]bool),
	}
}

func (m *MockDomainRepository) IsRegistered(ctx context.Context, domain string) (bool, error) {
	if m.CheckError != nil {
		return false, m.CheckError
	}
	return m.Registered[domain], nil
}
