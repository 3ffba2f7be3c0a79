package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/events"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/service"
)

// Handlers colección de handlers
type Handlers struct {
	Project   *ProjectHandler
	Expense   *ExpenseHandler
	Payment   *PaymentHandler
	Worker    *WorkerHandler
	Evidence  *EvidenceHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
	Events    *EventsHandler
}

// NewHandlers crea la colección de handlers
func NewHandlers(svc *service.Services, bus *events.Bus) *Handlers {
	return &Handlers{
		Project:   NewProjectHandler(svc.Project),
		Expense:   NewExpenseHandler(svc.Expense, svc.Report),
		Payment:   NewPaymentHandler(svc.Payment, svc.Report),
		Worker:    NewWorkerHandler(svc.Worker),
		Evidence:  NewEvidenceHandler(svc.Evidence, svc.Report),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Export:    NewExportHandler(svc.Report),
		Events:    NewEventsHandler(bus),
	}
}

// Response estructura de respuesta común
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success respuesta exitosa
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created respuesta de creación exitosa
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// BadRequest error de petición inválida
func BadRequest(c *gin.Context, message string) {
	c.JSON(400, Response{Code: 40000, Message: message})
}

// NotFound recurso no encontrado
func NotFound(c *gin.Context, message string) {
	c.JSON(404, Response{Code: 40400, Message: message})
}

// Unprocessable la petición es válida pero no se puede ejecutar (por
// ejemplo, exportar una colección vacía)
func Unprocessable(c *gin.Context, message string) {
	c.JSON(422, Response{Code: 42200, Message: message})
}

// InternalError error interno
func InternalError(c *gin.Context, message string) {
	c.JSON(500, Response{Code: 50000, Message: message})
}

// GetUserID identidad dejada en el contexto por el middleware JWT
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		return userID.(string)
	}
	return ""
}
