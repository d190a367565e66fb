package usecase

var NewsCatalogSize = len(newsCatalog)
