// Package tui is the interactive terminal front end of the scheduler. It
// follows The Elm Architecture via bubbletea: the App model holds all
// state, Update reacts to messages and View renders a string.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/staffdesk/shift-scheduler/internal/domain"
	"github.com/staffdesk/shift-scheduler/internal/scheduler"
)

// appState represents which "screen" we're on.
type appState int

const (
	stateMenu appState = iota
	stateEmployees
	stateAddEmployee
	stateAssign
	stateSchedule
	stateResult
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	resultStyle = lipgloss.NewStyle().PaddingTop(1)
)

type employeesLoadedMsg struct {
	employees []domain.Employee
	err       error
}

type employeeAddedMsg struct {
	employee domain.Employee
	err      error
}

type assignDoneMsg struct {
	result domain.AssignmentResult
	err    error
}

type scheduleLoadedMsg struct {
	employeeID string
	shifts     []domain.Shift
	err        error
}

// menuItem implements list.Item for the main menu.
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// App is the bubbletea model for the scheduling terminal.
type App struct {
	engine *scheduler.Engine

	state      appState
	menu       list.Model
	inputs     []textinput.Model
	focusIndex int
	output     string

	width  int
	height int
}

func NewApp(engine *scheduler.Engine) *App {
	items := []list.Item{
		menuItem{title: "Show all employees", desc: "List every employee on file"},
		menuItem{title: "Add new employee", desc: "Create an employee with a fresh id"},
		menuItem{title: "Assign employee to shift", desc: "Run the assignment checks and commit"},
		menuItem{title: "View employee schedule", desc: "Shifts assigned to one employee"},
		menuItem{title: "Quit", desc: "Leave the scheduler"},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Employee Scheduling System"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	return &App{
		engine: engine,
		state:  stateMenu,
		menu:   menu,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width, msg.Height-2)
		return a, nil

	case tea.KeyMsg:
		switch a.state {
		case stateMenu:
			return a.updateMenu(msg)
		case stateAddEmployee, stateAssign, stateSchedule:
			return a.updateForm(msg)
		case stateEmployees, stateResult:
			// any key returns to the menu
			a.state = stateMenu
			return a, nil
		}

	case employeesLoadedMsg:
		if msg.err != nil {
			a.output = errorStyle.Render("error: " + msg.err.Error())
		} else {
			a.output = renderEmployees(msg.employees)
		}
		a.state = stateEmployees
		return a, nil

	case employeeAddedMsg:
		if msg.err != nil {
			a.output = errorStyle.Render("error: " + msg.err.Error())
		} else {
			a.output = fmt.Sprintf("Employee added successfully: %s", msg.employee.EmployeeID)
		}
		a.state = stateResult
		return a, nil

	case assignDoneMsg:
		if msg.err != nil {
			a.output = errorStyle.Render("error: " + msg.err.Error())
		} else {
			a.output = msg.result.Message()
		}
		a.state = stateResult
		return a, nil

	case scheduleLoadedMsg:
		if msg.err != nil {
			a.output = errorStyle.Render("error: " + msg.err.Error())
		} else {
			a.output = renderSchedule(msg.employeeID, msg.shifts)
		}
		a.state = stateResult
		return a, nil
	}

	return a, nil
}

func (a *App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "enter":
		switch a.menu.Index() {
		case 0:
			return a, a.loadEmployees()
		case 1:
			a.startForm(stateAddEmployee, "Employee name", "Phone number")
			return a, textinput.Blink
		case 2:
			a.startForm(stateAssign, "Employee ID", "Shift ID")
			return a, textinput.Blink
		case 3:
			a.startForm(stateSchedule, "Employee ID")
			return a, textinput.Blink
		case 4:
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)
	return a, cmd
}

func (a *App) startForm(state appState, placeholders ...string) {
	a.state = state
	a.focusIndex = 0
	a.inputs = make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		input := textinput.New()
		input.Placeholder = p
		input.CharLimit = 64
		if i == 0 {
			input.Focus()
		}
		a.inputs[i] = input
	}
}

func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = stateMenu
		return a, nil
	case "tab", "shift+tab", "up", "down":
		if msg.String() == "shift+tab" || msg.String() == "up" {
			a.focusIndex--
		} else {
			a.focusIndex++
		}
		if a.focusIndex < 0 {
			a.focusIndex = len(a.inputs) - 1
		}
		if a.focusIndex >= len(a.inputs) {
			a.focusIndex = 0
		}
		cmds := make([]tea.Cmd, 0, len(a.inputs))
		for i := range a.inputs {
			if i == a.focusIndex {
				cmds = append(cmds, a.inputs[i].Focus())
				continue
			}
			a.inputs[i].Blur()
		}
		return a, tea.Batch(cmds...)
	case "enter":
		if a.focusIndex < len(a.inputs)-1 {
			a.inputs[a.focusIndex].Blur()
			a.focusIndex++
			return a, a.inputs[a.focusIndex].Focus()
		}
		return a.submitForm()
	}

	cmds := make([]tea.Cmd, len(a.inputs))
	for i := range a.inputs {
		a.inputs[i], cmds[i] = a.inputs[i].Update(msg)
	}
	return a, tea.Batch(cmds...)
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	values := make([]string, len(a.inputs))
	for i := range a.inputs {
		values[i] = strings.TrimSpace(a.inputs[i].Value())
	}
	for _, v := range values {
		if v == "" {
			// raw input validation lives here, not in the engine
			a.output = errorStyle.Render("all fields are required")
			a.state = stateResult
			return a, nil
		}
	}

	switch a.state {
	case stateAddEmployee:
		return a, a.addEmployee(values[0], values[1])
	case stateAssign:
		return a, a.assignShift(values[0], values[1])
	case stateSchedule:
		return a, a.loadSchedule(values[0])
	}
	return a, nil
}

func (a *App) loadEmployees() tea.Cmd {
	return func() tea.Msg {
		employees, err := a.engine.Employees(context.Background())
		return employeesLoadedMsg{employees: employees, err: err}
	}
}

func (a *App) addEmployee(name, phone string) tea.Cmd {
	return func() tea.Msg {
		employee, err := a.engine.AddEmployee(context.Background(), name, phone)
		return employeeAddedMsg{employee: employee, err: err}
	}
}

func (a *App) assignShift(employeeID, shiftID string) tea.Cmd {
	return func() tea.Msg {
		result, err := a.engine.AssignShift(context.Background(), employeeID, shiftID)
		return assignDoneMsg{result: result, err: err}
	}
}

func (a *App) loadSchedule(employeeID string) tea.Cmd {
	return func() tea.Msg {
		shifts, err := a.engine.EmployeeSchedule(context.Background(), employeeID)
		return scheduleLoadedMsg{employeeID: employeeID, shifts: shifts, err: err}
	}
}

func (a *App) View() string {
	switch a.state {
	case stateMenu:
		return a.menu.View()

	case stateEmployees, stateResult:
		return resultStyle.Render(a.output) + "\n\n" + labelStyle.Render("press any key to return")

	case stateAddEmployee, stateAssign, stateSchedule:
		var b strings.Builder
		switch a.state {
		case stateAddEmployee:
			b.WriteString(titleStyle.Render("Add new employee"))
		case stateAssign:
			b.WriteString(titleStyle.Render("Assign employee to shift"))
		case stateSchedule:
			b.WriteString(titleStyle.Render("View employee schedule"))
		}
		b.WriteString("\n\n")
		for i := range a.inputs {
			b.WriteString(a.inputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("enter to submit, esc to cancel"))
		return b.String()
	}
	return ""
}

func renderEmployees(employees []domain.Employee) string {
	if len(employees) == 0 {
		return "No employees on file."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Employees"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%-12s %-21s %s\n", "Employee ID", "Name", "Phone"))
	b.WriteString(fmt.Sprintf("%-12s %-21s %s\n", "-----------", "-------------------", "---------"))
	for _, e := range employees {
		b.WriteString(fmt.Sprintf("%-12s %-21s %s\n", e.EmployeeID, e.Name, e.Phone))
	}
	return b.String()
}

func renderSchedule(employeeID string, shifts []domain.Shift) string {
	if len(shifts) == 0 {
		return "No shifts found or employee does not exist."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Schedule for " + employeeID))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%-10s %-12s %-8s %s\n", "Shift ID", "Date", "Start", "End"))
	for _, s := range shifts {
		b.WriteString(fmt.Sprintf("%-10s %-12s %-8s %s\n", s.ShiftID, s.Date, s.StartTime, s.EndTime))
	}
	return b.String()
}
