package product

// ServiceInterface is the subset of product operations other packages depend on.
type ServiceInterface interface {
	ListAvailable() ([]Product, error)
	GetByID(id string) (Product, error)
	ListByIDs(ids []string) ([]Product, error)
}

// Service orchestrates catalog reads.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAvailable() ([]Product, error) {
	return s.repo.ListAvailable()
}

func (s *Service) GetByID(id string) (Product, error) {
	if id == "" {
		return Product{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []string) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

// Categories returns distinct categories of the available products in order of
// first appearance.
func (s *Service) Categories() ([]string, error) {
	products, err := s.repo.ListAvailable()
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	out := make([]string, 0)
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out, nil
}

// Seed writes the provided products via upsert-by-name.
func (s *Service) Seed(products []Product) error {
	return s.repo.UpsertByName(products)
}
