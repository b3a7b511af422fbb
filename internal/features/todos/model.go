// ================== internal/features/todos/model.go ==================
package todos

import (
	"time"

	"cloud.google.com/go/civil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxDescriptionLength bounds Todo.Description, counted in characters.
const MaxDescriptionLength = 1000

// Todo is the stored record. DueDate is midnight UTC of the due day and
// is absent from the document when unset.
type Todo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Completed   bool               `bson:"completed"`
	DueDate     *time.Time         `bson:"dueDate,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// TodoRequest represents todo create/replace data
// @Description Editable fields of a todo; the same rules apply to create and update
type TodoRequest struct {
	Title       string      `json:"title" binding:"required,notblank" example:"Buy milk"`
	Description string      `json:"description" binding:"max=1000" example:"2%"`
	DueDate     *civil.Date `json:"dueDate" binding:"omitempty,notpast" swaggertype:"string" format:"date" example:"2030-01-31"`
}

// TodoResponse represents a todo as returned by the API
// @Description Todo item with all its properties
type TodoResponse struct {
	ID          string      `json:"id" example:"507f1f77bcf86cd799439011"`
	Title       string      `json:"title" example:"Buy milk"`
	Description string      `json:"description" example:"2%"`
	Completed   bool        `json:"completed" example:"false"`
	DueDate     *civil.Date `json:"dueDate" swaggertype:"string" format:"date" example:"2030-01-31"`
}

// ToResponse maps a stored record to its API shape.
func ToResponse(todo *Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID.Hex(),
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		DueDate:     dueDateOf(todo.DueDate),
	}
}

// ToResponses keeps order and never returns nil, so empty lists encode as [].
func ToResponses(todos []Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, ToResponse(&todos[i]))
	}
	return out
}

// apply copies the editable fields of req onto todo.
func (req *TodoRequest) apply(todo *Todo) {
	todo.Title = req.Title
	todo.Description = req.Description
	todo.DueDate = dueTime(req.DueDate)
}

// dueDateOf converts a stored due timestamp back to its calendar day.
func dueDateOf(t *time.Time) *civil.Date {
	if t == nil {
		return nil
	}
	d := civil.DateOf(t.UTC())
	return &d
}

// dueTime stores a due day as midnight UTC.
func dueTime(d *civil.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.In(time.UTC)
	return &t
}
