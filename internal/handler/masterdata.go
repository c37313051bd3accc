package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"busriya/internal/backend"
)

// MasterDataHandler proxies the core service's master-data
// collections. Every collection has the same list/get/create/update/
// delete surface, so registration is parametrized over the resource
// client.
type MasterDataHandler struct {
	core backend.CoreGateway
}

// NewMasterDataHandler creates a new MasterDataHandler.
func NewMasterDataHandler(core backend.CoreGateway) *MasterDataHandler {
	return &MasterDataHandler{core: core}
}

// Register registers the full CRUD surface for every master-data
// collection on the given (role-gated) group.
func (h *MasterDataHandler) Register(rg *gin.RouterGroup) {
	registerResource(rg, "/stations", h.core.Stations())
	registerResource(rg, "/routes", h.core.Routes())
	registerResource(rg, "/vehicles", h.core.Vehicles())
	registerResource(rg, "/bus-operators", h.core.BusOperators())
	registerResource(rg, "/bus-workers", h.core.BusWorkers())
	registerResource(rg, "/policies", h.core.Policies())
	registerResource(rg, "/permits", h.core.Permits())
	registerResource(rg, "/schedules", h.core.Schedules())
}

// ListStations handles GET /v1/stations. The one collection the
// commuter pages need without a session, for the trip search pickers.
func (h *MasterDataHandler) ListStations(c *gin.Context) {
	stations, err := h.core.Stations().ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, stations)
}

func registerResource[T any](rg *gin.RouterGroup, path string, res backend.Resource[T]) {
	rg.GET(path, listResource(res))
	rg.GET(path+"/:id", getResource(res))
	rg.POST(path, createResource(res))
	rg.PUT(path+"/:id", updateResource(res))
	rg.DELETE(path+"/:id", deleteResource(res))
}

func listResource[T any](res backend.Resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("all") == "true" {
			items, err := res.ListAll(c.Request.Context())
			if err != nil {
				respondError(c, err)
				return
			}
			respondJSON(c, http.StatusOK, items)
			return
		}

		q := backend.ListQuery{}
		q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

		page, err := res.List(c.Request.Context(), q)
		if err != nil {
			respondError(c, err)
			return
		}
		respondJSON(c, http.StatusOK, page)
	}
}

func getResource[T any](res backend.Resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
			return
		}

		item, err := res.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		respondJSON(c, http.StatusOK, item)
	}
}

func createResource[T any](res backend.Resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := res.Create(c.Request.Context(), &item)
		if err != nil {
			respondError(c, err)
			return
		}
		respondJSON(c, http.StatusCreated, created)
	}
}

func updateResource[T any](res backend.Resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
			return
		}

		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		updated, err := res.Update(c.Request.Context(), id, &item)
		if err != nil {
			respondError(c, err)
			return
		}
		respondJSON(c, http.StatusOK, updated)
	}
}

func deleteResource[T any](res backend.Resource[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
			return
		}

		if err := res.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
