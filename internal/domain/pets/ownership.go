package pets

import "context"

// Summary es la parte de la mascota que copian las solicitudes.
type Summary struct {
	Name       string
	Image      string
	OwnerEmail string
}

// Summarize busca los datos que copia una solicitud de adopción.
func (s *Service) Summarize(ctx context.Context, petID string) (Summary, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Name: p.Name, Image: p.Image, OwnerEmail: p.OwnerEmail}, nil
}
