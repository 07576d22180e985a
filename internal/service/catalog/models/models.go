package models

import "github.com/m04kA/OtoCare-BookingService/internal/domain"

type CityListResponse struct {
	Cities []string `json:"cities"`
}

type GarageResponse struct {
	ID      string  `json:"id"`
	City    string  `json:"city"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone,omitempty"`
}

type GarageListResponse struct {
	Garages []GarageResponse `json:"garages"`
}

type WorkingHoursItem struct {
	ID        int    `json:"id"`
	DayLabel  string `json:"day"`
	OpenTime  string `json:"open"`  // "08:00"
	CloseTime string `json:"close"` // "17:00"
}

type WorkingHoursResponse struct {
	Hours []WorkingHoursItem `json:"hours"`
}

type PackageResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price"`
}

type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
}

type BannerResponse struct {
	ID       int64   `json:"id"`
	ImageURL string  `json:"imageUrl"`
	Title    *string `json:"title,omitempty"`
}

type BannerListResponse struct {
	Kind    string           `json:"kind"`
	Banners []BannerResponse `json:"banners"`
}

func FromDomainGarages(garages []*domain.Garage) *GarageListResponse {
	resp := &GarageListResponse{Garages: make([]GarageResponse, 0, len(garages))}
	for _, g := range garages {
		resp.Garages = append(resp.Garages, GarageResponse{
			ID:      g.ID,
			City:    g.City,
			Name:    g.Name,
			Address: g.Address,
			Phone:   g.Phone,
		})
	}
	return resp
}

func FromDomainWorkingHours(hours []*domain.WorkingHours) *WorkingHoursResponse {
	resp := &WorkingHoursResponse{Hours: make([]WorkingHoursItem, 0, len(hours))}
	for _, h := range hours {
		resp.Hours = append(resp.Hours, WorkingHoursItem{
			ID:        h.ID,
			DayLabel:  h.DayLabel,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
		})
	}
	return resp
}

func FromDomainPackages(packages []*domain.Package) *PackageListResponse {
	resp := &PackageListResponse{Packages: make([]PackageResponse, 0, len(packages))}
	for _, p := range packages {
		resp.Packages = append(resp.Packages, PackageResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		})
	}
	return resp
}

func FromDomainBanners(kind domain.BannerKind, banners []*domain.Banner) *BannerListResponse {
	resp := &BannerListResponse{Kind: string(kind), Banners: make([]BannerResponse, 0, len(banners))}
	for _, b := range banners {
		resp.Banners = append(resp.Banners, BannerResponse{
			ID:       b.ID,
			ImageURL: b.ImageURL,
			Title:    b.Title,
		})
	}
	return resp
}
