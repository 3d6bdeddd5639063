package item

// ServiceInterface lets other packages (cart, order) depend on the catalog
// without pulling in a concrete service.
type ServiceInterface interface {
	List() []Item
	GetByID(id int) (Item, error)
	ListByName(name string) []Item
	Create(it Item) (Item, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Item {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Item, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByName(name string) []Item {
	return s.repo.ListByName(name)
}

func (s *Service) Create(it Item) (Item, error) {
	return s.repo.Create(it)
}

var _ ServiceInterface = (*Service)(nil)
