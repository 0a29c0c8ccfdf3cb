package usecase

import "github.com/jhoicas/backoffice-api/internal/application/dto"

// bounds traduce la página a limit/offset de repositorio; nil = sin límite.
func bounds(page *dto.PageRequest) (limit, offset int) {
	if page == nil {
		return 0, 0
	}
	return page.Limit, page.Skip
}

func pages(page *dto.PageRequest, count int) int {
	if page == nil {
		return dto.Pages(count, count)
	}
	return dto.Pages(count, page.Limit)
}
