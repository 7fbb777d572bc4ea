package api

import (
	"net/http"
	"strconv"

	reqdto "library-backend/internal/handler/dto/request"
	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookHandler struct {
	commands commands.BookCommands
	queries  queries.BookQueries
}

func NewBookHandler(c commands.BookCommands, q queries.BookQueries) *BookHandler {
	return &BookHandler{commands: c, queries: q}
}

// @Summary List books
// @Description List the catalog with optional search and sorting
// @Tags books
// @Produce json
// @Param search query string false "Title or author substring"
// @Param sort query string false "title (default), author, publication_year, available_copies"
// @Param order query string false "asc (default) or desc"
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Items to skip"
// @Success 200 {object} resdto.BookListResponse
// @Failure 400 {object} map[string]string
// @Router /books [get]
func (h *BookHandler) List(c *gin.Context) {
	sort, err := queries.ParseBookSort(c.Query("sort"))
	if err != nil {
		abortBadRequest(c, err, "Invalid sort field")
		return
	}

	params := queries.BookListParams{
		Search: c.Query("search"),
		Sort:   sort,
		Desc:   c.Query("order") == "desc",
		Limit:  queries.DefaultListLimit,
	}
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			params.Limit = queries.ValidateLimit(iv)
		}
	}
	if v := c.Query("offset"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil && iv > 0 {
			params.Offset = iv
		}
	}

	items, err := h.queries.List(c.Request.Context(), params)
	if err != nil {
		abortWithKind(c, err, "list books")
		return
	}

	resp, err := resdto.FromBookList(items, params.Limit, params.Offset)
	if err != nil {
		abortWithKind(c, err, "map books")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} resdto.BookResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid book id")
		return
	}

	view, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		abortWithKind(c, err, "get book")
		return
	}

	resp, err := resdto.FromBookView(view)
	if err != nil {
		abortWithKind(c, err, "map book")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create book
// @Description All copies start available
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookRequest true "Book"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithKind(c, err, "create book")
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update book
// @Description Partial update. Changing totalCopies shifts availableCopies by the same delta.
// @Tags books
// @Accept json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Param request body reqdto.UpdateBookRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid book id")
		return
	}

	var req reqdto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortWithKind(c, err, "update book")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete book
// @Description Rejected while any reservation on the book is active
// @Tags books
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid book id")
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		abortWithKind(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}
