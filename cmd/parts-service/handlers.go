package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EETech-Group/parts-inventory/internal/part"
)

// listPartsHandler godoc
// @Summary List parts
// @Description Lists parts, optionally filtered. Both filters AND together.
// @Tags parts
// @Produce json
// @Param search query string false "substring match on name, partNumber or manufacturer (case-insensitive)"
// @Param category query string false "exact category match"
// @Success 200 {array} part.Part
// @Failure 500 {object} part.HTTPError
// @Router /parts [get]
func listPartsHandler(repo part.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		parts, err := repo.List(c.Request.Context(), part.Filter{
			Search:   c.Query("search"),
			Category: c.Query("category"),
		})
		if err != nil {
			log.Printf("[parts] list: %v", err)
			c.JSON(http.StatusInternalServerError, part.HTTPError{Error: "Failed to fetch parts"})
			return
		}
		c.JSON(http.StatusOK, parts)
	}
}

// createPartHandler godoc
// @Summary Create a part
// @Tags parts
// @Accept json
// @Produce json
// @Param part body part.PartRequest true "part fields"
// @Success 201 {object} part.Part
// @Failure 500 {object} part.HTTPError
// @Router /parts [post]
func createPartHandler(repo part.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req part.PartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[parts] create: bad body: %v", err)
			c.JSON(http.StatusInternalServerError, part.HTTPError{Error: "Failed to create part"})
			return
		}
		p := req.Part()
		if err := repo.Create(c.Request.Context(), p); err != nil {
			log.Printf("[parts] create: %v", err)
			c.JSON(http.StatusInternalServerError, part.HTTPError{Error: "Failed to create part"})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// getPartHandler godoc
// @Summary Fetch one part
// @Tags parts
// @Produce json
// @Param id path int true "part id"
// @Success 200 {object} part.Part
// @Failure 404 {object} part.HTTPError
// @Failure 500 {object} part.HTTPError
// @Router /parts/{id} [get]
func getPartHandler(repo part.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			log.Printf("[parts] get: bad id %q", c.Param("id"))
			c.JSON(http.StatusInternalServerError, part.HTTPError{Error: "Failed to fetch part"})
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if errors.Is(err, part.ErrNotFound) {
			c.JSON(http.StatusNotFound, part.HTTPError{Error: "Part not found"})
			return
		}
		if err != nil {
			log.Printf("[parts] get %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, part.HTTPError{Error: "Failed to fetch part"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// updatePartHandler godoc
// @Summary Replace a part
// @Description Full replace: omitted numeric fields become 0, omitted specifications {}.
// @Tags parts
// @Accept json
// @Produce json
// @Param id path int true "part id"
// @Param part body part.PartRequest true "part fields"
// @Success 200 {object} part.Part
// @Failure 404 {object} part.HTTPError
// @Failure 500 {object} part.HTTPError
// @Router /parts/{id} [put]
func updatePartHandler(repo part.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			log.Printf("[parts] update: bad id %q", c.Param("id"))
			c.JSON(http.StatusInternalServerError, part.HTTPError{Error: "Failed to update part"})
			return
		}
		var req part.PartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[parts] update %d: bad body: %v", id, err)
			c.JSON(http.StatusInternalServerError, part.HTTPError{Error: "Failed to update part"})
			return
		}
		p := req.Part()
		p.ID = id
		err = repo.Update(c.Request.Context(), p)
		if errors.Is(err, part.ErrNotFound) {
			c.JSON(http.StatusNotFound, part.HTTPError{Error: "Part not found"})
			return
		}
		if err != nil {
			log.Printf("[parts] update %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, part.HTTPError{Error: "Failed to update part"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// deletePartHandler godoc
// @Summary Delete a part
// @Tags parts
// @Produce json
// @Param id path int true "part id"
// @Success 200 {object} part.DeleteResponse
// @Failure 404 {object} part.HTTPError
// @Failure 500 {object} part.HTTPError
// @Router /parts/{id} [delete]
func deletePartHandler(repo part.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			log.Printf("[parts] delete: bad id %q", c.Param("id"))
			c.JSON(http.StatusInternalServerError, part.HTTPError{Error: "Failed to delete part"})
			return
		}
		ok, err := repo.Delete(c.Request.Context(), id)
		if err != nil {
			log.Printf("[parts] delete %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, part.HTTPError{Error: "Failed to delete part"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, part.HTTPError{Error: "Part not found"})
			return
		}
		c.JSON(http.StatusOK, part.DeleteResponse{Message: "Part deleted successfully"})
	}
}
