package repository

import "croplan/entities"

type RuleRepository interface {
	List() ([]entities.CropRule, error)
	FindByCrop(crop string) (*entities.CropRule, error)
	CropsByFamily(family string) ([]string, error)
	// Successors returns the recommended follow-up crops for crop, minus any
	// names in exclude.
	Successors(crop string, exclude []string) ([]string, error)
}
