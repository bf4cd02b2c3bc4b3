package usecases

import (
	"errors"
	"sync"

	"placard-server/internal/placard/domain"
	"placard-server/internal/placard/geometry"
)

//go:generate mockgen -source=editor_service.go -destination=../../../test/unit/doubles/placard/usecases/editor_service_mock.go -package=usecases -mock_names=EditorService=MockEditorService

var ErrNoActiveGesture = errors.New("no active gesture for field")

// EditorService translates pointer drag and resize gestures into template
// mutations. Gesture bookkeeping is ephemeral and local; every committed
// rectangle goes through TemplateService.Dispatch, which stays the single
// authoritative copy of the layout.
//
// Drag clamping policy: the rectangle may leave the page canvas while the
// pointer is down and is pulled back inside on release (clamp-on-release).
type EditorService interface {
	BeginDrag(key domain.FieldKey) error
	DragBy(key domain.FieldKey, delta geometry.Delta) (domain.Rect, error)
	EndDrag(key domain.FieldKey) (domain.Rect, error)
	BeginResize(key domain.FieldKey, edges geometry.Edges) error
	ResizeBy(key domain.FieldKey, delta geometry.Delta) (domain.Rect, error)
	EndResize(key domain.FieldKey) (domain.Rect, error)
	Dimensions(key domain.FieldKey) (domain.Size, error)
}

func NewEditorService(templates TemplateService) *SimpleEditorService {
	return &SimpleEditorService{
		templates: templates,
		gestures:  make(map[domain.FieldKey]*gesture),
	}
}

var _ EditorService = &SimpleEditorService{}

type gestureKind int

const (
	gestureDrag gestureKind = iota
	gestureResize
)

type gesture struct {
	kind  gestureKind
	edges geometry.Edges
}

type SimpleEditorService struct {
	mu        sync.Mutex
	templates TemplateService
	gestures  map[domain.FieldKey]*gesture
}

func (s *SimpleEditorService) BeginDrag(key domain.FieldKey) error {
	if !key.Valid() {
		return ErrUnknownField
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gestures[key] = &gesture{kind: gestureDrag}
	return nil
}

// DragBy moves the field by one pointer step and commits the result
// immediately. The current rectangle is re-read from the store on every
// move, so rapid gestures accumulate without a local shadow copy.
func (s *SimpleEditorService) DragBy(key domain.FieldKey, delta geometry.Delta) (domain.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireGesture(key, gestureDrag); err != nil {
		return domain.Rect{}, err
	}

	rect, err := s.fieldRect(key)
	if err != nil {
		return domain.Rect{}, err
	}

	offset := geometry.ToScreenOffset(geometry.Point{X: rect.X, Y: rect.Y}, key)
	offset.DX += delta.DX
	offset.DY += delta.DY
	origin := geometry.ToTemplateOrigin(offset, key)
	rect.X, rect.Y = origin.X, origin.Y

	return s.commitRect(key, rect)
}

// EndDrag closes the gesture and clamps the committed rectangle back
// inside the page canvas.
func (s *SimpleEditorService) EndDrag(key domain.FieldKey) (domain.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireGesture(key, gestureDrag); err != nil {
		return domain.Rect{}, err
	}
	delete(s.gestures, key)

	rect, err := s.fieldRect(key)
	if err != nil {
		return domain.Rect{}, err
	}

	canvas := s.templates.Get().PageSize.Dimensions()
	return s.commitRect(key, geometry.ClampToCanvas(rect, canvas))
}

func (s *SimpleEditorService) BeginResize(key domain.FieldKey, edges geometry.Edges) error {
	if !key.Valid() {
		return ErrUnknownField
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gestures[key] = &gesture{kind: gestureResize, edges: edges}
	return nil
}

func (s *SimpleEditorService) ResizeBy(key domain.FieldKey, delta geometry.Delta) (domain.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.gestures[key]
	if !ok || active.kind != gestureResize {
		return domain.Rect{}, ErrNoActiveGesture
	}

	rect, err := s.fieldRect(key)
	if err != nil {
		return domain.Rect{}, err
	}

	return s.commitRect(key, geometry.ApplyResizeDelta(rect, active.edges, delta))
}

func (s *SimpleEditorService) EndResize(key domain.FieldKey) (domain.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireGesture(key, gestureResize); err != nil {
		return domain.Rect{}, err
	}
	delete(s.gestures, key)

	return s.fieldRect(key)
}

// Dimensions is the width x height readout shown next to a field. It
// always reflects the stored, post-clamp rectangle rather than the raw
// gesture delta.
func (s *SimpleEditorService) Dimensions(key domain.FieldKey) (domain.Size, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rect, err := s.fieldRect(key)
	if err != nil {
		return domain.Size{}, err
	}
	return domain.Size{Width: rect.Width, Height: rect.Height}, nil
}

func (s *SimpleEditorService) requireGesture(key domain.FieldKey, kind gestureKind) error {
	active, ok := s.gestures[key]
	if !ok || active.kind != kind {
		return ErrNoActiveGesture
	}
	return nil
}

func (s *SimpleEditorService) fieldRect(key domain.FieldKey) (domain.Rect, error) {
	field, ok := s.templates.Get().Field(key)
	if !ok {
		return domain.Rect{}, ErrUnknownField
	}
	return field.Rect, nil
}

func (s *SimpleEditorService) commitRect(key domain.FieldKey, rect domain.Rect) (domain.Rect, error) {
	next, err := s.templates.Dispatch(SetFieldRect{Key: key, Rect: rect})
	if err != nil {
		return domain.Rect{}, err
	}

	committed, _ := next.Field(key)
	return committed.Rect, nil
}
