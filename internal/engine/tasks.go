package engine

import (
	"context"
	"strconv"

	"github.com/girgvliani/usefulAPP/internal/storage"
)

// AddProject registers a pending project. IDs are sequential from 1.
func (s *Service) AddProject(ctx context.Context, name string, value int, deadline string) (*storage.Project, error) {
	p := &storage.Project{
		ID:       len(s.profile.Projects) + 1,
		Name:     name,
		Value:    value,
		Deadline: deadline,
		Created:  s.today(),
	}
	s.profile.Projects = append(s.profile.Projects, p)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

type ProjectResult struct {
	Project    *storage.Project
	Multiplier float64
	XP         int
	PerArea    int
	Awards     []*XPResult
	Earnings   int
	Goal       int
}

// CompleteProject is one-shot: the project becomes terminal, its value lands
// in this month's earnings, and value/10 XP (time-scaled) is spread evenly
// over the Work Skills areas.
func (s *Service) CompleteProject(ctx context.Context, id int) (*ProjectResult, error) {
	var proj *storage.Project
	for _, p := range s.profile.Projects {
		if p.ID == id {
			proj = p
			break
		}
	}
	if proj == nil {
		return nil, NotFoundError{Kind: "project", Key: strconv.Itoa(id)}
	}
	if proj.Completed {
		return nil, AlreadyDoneError{Kind: "project", Key: strconv.Itoa(id)}
	}

	today := s.today()
	mult, err := CalculateTimeMultiplier(proj.Deadline, today)
	if err != nil {
		return nil, err
	}

	proj.Completed = true
	proj.CompletionDate = &today
	s.profile.Income.CurrentMonthEarnings += proj.Value

	baseXP := proj.Value / 10
	xp := int(float64(baseXP) * mult)

	res := &ProjectResult{
		Project:    proj,
		Multiplier: mult,
		XP:         xp,
		Earnings:   s.profile.Income.CurrentMonthEarnings,
		Goal:       s.profile.Income.MonthlyGoal,
	}

	if work := s.workAreaNames(); len(work) > 0 {
		res.PerArea = xp / len(work)
		for _, name := range work {
			award, err := s.addXP(name, res.PerArea, "Project: "+proj.Name)
			if err != nil {
				return nil, err
			}
			res.Awards = append(res.Awards, award)
		}
	}

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// AddTodo registers a pending todo bound to a life area.
func (s *Service) AddTodo(ctx context.Context, task, area string, baseXP int, deadline string) (*storage.Todo, error) {
	if _, ok := s.profile.LifeAreas[area]; !ok {
		return nil, NotFoundError{Kind: "area", Key: area}
	}
	t := &storage.Todo{
		ID:       len(s.profile.Todos) + 1,
		Task:     task,
		Area:     area,
		BaseXP:   baseXP,
		Deadline: deadline,
		Created:  s.today(),
	}
	s.profile.Todos = append(s.profile.Todos, t)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

type TodoResult struct {
	Todo       *storage.Todo
	Multiplier float64
	XP         int
	Award      *XPResult
}

// CompleteTodo is one-shot: baseXP times the time multiplier goes entirely to
// the todo's designated area.
func (s *Service) CompleteTodo(ctx context.Context, id int) (*TodoResult, error) {
	var todo *storage.Todo
	for _, t := range s.profile.Todos {
		if t.ID == id {
			todo = t
			break
		}
	}
	if todo == nil {
		return nil, NotFoundError{Kind: "todo", Key: strconv.Itoa(id)}
	}
	if todo.Completed {
		return nil, AlreadyDoneError{Kind: "todo", Key: strconv.Itoa(id)}
	}

	today := s.today()
	mult, err := CalculateTimeMultiplier(todo.Deadline, today)
	if err != nil {
		return nil, err
	}

	todo.Completed = true
	todo.CompletionDate = &today
	xp := int(float64(todo.BaseXP) * mult)

	award, err := s.addXP(todo.Area, xp, "Task: "+todo.Task)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &TodoResult{Todo: todo, Multiplier: mult, XP: xp, Award: award}, nil
}

// PendingProjects lists projects that can still be completed.
func (s *Service) PendingProjects() []*storage.Project {
	var out []*storage.Project
	for _, p := range s.profile.Projects {
		if !p.Completed {
			out = append(out, p)
		}
	}
	return out
}

// PendingTodos lists todos that can still be completed.
func (s *Service) PendingTodos() []*storage.Todo {
	var out []*storage.Todo
	for _, t := range s.profile.Todos {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}
