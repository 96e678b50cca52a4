package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"mikopo-backoffice/internal/domain/audit"
	"mikopo-backoffice/internal/domain/document"
	"mikopo-backoffice/internal/usecase/application"
)

// maxDocumentSize caps a single uploaded document.
const maxDocumentSize = 5 << 20 // 5 MiB

type ApplicationHandler struct {
	uc    *application.Usecase
	audit audit.Sink
}

func NewApplicationHandler(uc *application.Usecase, sink audit.Sink) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, audit: sink}
}

func (h *ApplicationHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Submit takes a multipart form: scalar fields plus one file per document
// slot, field names matching the slot schema.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "multipart form expected"})
	}

	in, err := submitInputFromForm(c, form)
	if err != nil {
		return writeError(c, err)
	}

	dto, err := h.uc.Submit(c.Request().Context(), *in)
	if err != nil {
		return writeError(c, err)
	}

	h.audit.Log(c.Request().Context(), actor(c), "CREATE_APPLICATION",
		fmt.Sprintf("Created loan application for %s", dto.ApplicantName))
	return c.JSON(http.StatusCreated, dto)
}

type transitionReq struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func (h *ApplicationHandler) Transition(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	var req transitionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.TransitionStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}

	h.audit.Log(c.Request().Context(), actor(c), "UPDATE_APPLICATION_STATUS",
		fmt.Sprintf("Updated application %d status to %s", id, req.Status))
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	h.audit.Log(c.Request().Context(), actor(c), "DELETE_APPLICATION",
		fmt.Sprintf("Deleted application %d", id))
	return c.JSON(http.StatusOK, map[string]string{"message": "application deleted"})
}

func (h *ApplicationHandler) Schedule(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeError(c, err)
	}
	lines, err := h.uc.PreviewSchedule(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, lines)
}

func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func submitInputFromForm(c echo.Context, form *multipart.Form) (*application.SubmitInput, error) {
	principal, _ := decimal.NewFromString(c.FormValue("principal"))
	termMonths, _ := strconv.Atoi(c.FormValue("term_months"))
	rate, _ := strconv.ParseFloat(c.FormValue("interest_rate"), 64)

	in := &application.SubmitInput{
		ApplicantName:    c.FormValue("applicant_name"),
		NationalID:       c.FormValue("national_id"),
		Principal:        principal,
		TermMonths:       termMonths,
		InterestRate:     rate,
		EmploymentStatus: c.FormValue("employment_status"),
		RepaymentMode:    c.FormValue("repayment_mode"),
		Sponsor1Name:     c.FormValue("sponsor1_name"),
		Sponsor1ID:       c.FormValue("sponsor1_id"),
		Sponsor2Name:     c.FormValue("sponsor2_name"),
		Sponsor2ID:       c.FormValue("sponsor2_id"),
		Documents:        make(map[document.Slot]application.DocumentUpload),
	}

	for field, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		fh := headers[0]
		if fh.Size > maxDocumentSize {
			return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge,
				fmt.Sprintf("document %s exceeds the size limit", field))
		}
		data, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		in.Documents[document.Slot(field)] = application.DocumentUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		}
	}
	return in, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxDocumentSize))
}
