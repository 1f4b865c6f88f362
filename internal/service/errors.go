package service

import "errors"

var (
	ErrSiteConfig        = errors.New("fetch site config failed")
	ErrMaintenanceConfig = errors.New("fetch maintenance config failed")
	ErrPage              = errors.New("fetch page failed")
	ErrInvalidSlug       = errors.New("invalid page slug")
)
