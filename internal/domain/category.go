package domain

// DefaultCategories — категории, которыми инициализируется пустой список
var DefaultCategories = []string{"Produkte", "Dienstleistungen", "Sonstiges"}

// Categories — упорядоченный список названий категорий арендатора.
// Список не бывает пустым после удаления: последнюю категорию удалить нельзя.
type Categories []string

func NewDefaultCategories() Categories {
	return append(Categories(nil), DefaultCategories...)
}

func (c Categories) Contains(name string) bool {
	for _, cat := range c {
		if cat == name {
			return true
		}
	}
	return false
}

// Without возвращает копию списка без всех вхождений name.
func (c Categories) Without(name string) Categories {
	res := make(Categories, 0, len(c))
	for _, cat := range c {
		if cat != name {
			res = append(res, cat)
		}
	}
	return res
}
