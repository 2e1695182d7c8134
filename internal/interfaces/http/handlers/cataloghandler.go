package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixmate/internal/application/catalog/usecases"
	"fixmate/internal/shared/logger"
	"fixmate/internal/shared/utils"
)

// CatalogHandler serves the brand → appliance → issue → solution lookup
// chain and full-text search.
type CatalogHandler struct {
	listBrandsUseCase     ListBrandsExecutor
	listAppliancesUseCase ListAppliancesExecutor
	listIssuesUseCase     ListIssuesExecutor
	getSolutionUseCase    GetSolutionExecutor
	searchUseCase         SearchIssuesExecutor
	logger                logger.Interface
}

func NewCatalogHandler(
	listBrandsUC ListBrandsExecutor,
	listAppliancesUC ListAppliancesExecutor,
	listIssuesUC ListIssuesExecutor,
	getSolutionUC GetSolutionExecutor,
	searchUC SearchIssuesExecutor,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		listBrandsUseCase:     listBrandsUC,
		listAppliancesUseCase: listAppliancesUC,
		listIssuesUseCase:     listIssuesUC,
		getSolutionUseCase:    getSolutionUC,
		searchUseCase:         searchUC,
		logger:                logger,
	}
}

type SolutionRequest struct {
	Brand     string `json:"brand"`
	Appliance string `json:"appliance"`
	Issue     string `json:"issue"`
}

// GetBrands handles GET /api/brands
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	brands, err := h.listBrandsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, brands)
}

// GetAppliances handles GET /api/appliances?brand=X
func (h *CatalogHandler) GetAppliances(c *gin.Context) {
	cmd := usecases.ListAppliancesCommand{
		Brand: c.Query("brand"),
	}

	appliances, err := h.listAppliancesUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, appliances)
}

// GetIssues handles GET /api/issues?brand=X&appliance=Y
func (h *CatalogHandler) GetIssues(c *gin.Context) {
	cmd := usecases.ListIssuesCommand{
		Brand:     c.Query("brand"),
		Appliance: c.Query("appliance"),
	}

	issues, err := h.listIssuesUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, issues)
}

// GetSolution handles POST /api/solution
func (h *CatalogHandler) GetSolution(c *gin.Context) {
	var req SolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid or missing JSON body")
		return
	}

	cmd := usecases.GetSolutionCommand{
		Brand:     req.Brand,
		Appliance: req.Appliance,
		Issue:     req.Issue,
	}

	result, err := h.getSolutionUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// Search handles GET /api/search?q=&limit=&page=
func (h *CatalogHandler) Search(c *gin.Context) {
	p := utils.ParsePagination(c)
	cmd := usecases.SearchIssuesCommand{
		Query: c.Query("q"),
		Page:  p.Page,
		Limit: p.Limit,
	}

	result, err := h.searchUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, utils.SearchResponse{
		Total: result.Total,
		Page:  result.Page,
		Pages: result.Pages,
		Items: result.Items,
	})
}

// Index handles GET / by redirecting to the brand listing.
func (h *CatalogHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/api/brands")
}
