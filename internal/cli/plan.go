package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pcdshub/hxr-attenuator/pkg/solver"
	"github.com/pcdshub/hxr-attenuator/pkg/stack"
)

// planCommand creates the interactive planner.
func (c *CLI) planCommand() *cobra.Command {
	var (
		configPath string
		tDes       float64
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Interactively explore targets against a stack definition",
		Long: `Interactively explore blade configurations for a stack definition.

Adjust the desired transmission with the arrow keys and watch the resolved
pattern update live. The planner only displays target patterns; it never
commands hardware.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := stack.Load(configPath)
			if err != nil {
				return err
			}
			transmissions, err := s.Transmissions(nil)
			if err != nil {
				return err
			}
			m := newPlanModel(s, transmissions, tDes)
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "stack definition TOML file")
	cmd.Flags().Float64VarP(&tDes, "t-des", "d", 0.1, "initial desired transmission")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// planMode cycles through the resolution strategies on 'm'.
type planMode int

const (
	planFloor planMode = iota
	planCeiling
	planPriority
)

func (m planMode) String() string {
	switch m {
	case planFloor:
		return "floor"
	case planCeiling:
		return "ceiling"
	case planPriority:
		return "priority"
	}
	return "unknown"
}

// planModel is the bubbletea model for the interactive planner.
type planModel struct {
	stack         *stack.Stack
	transmissions []float64
	tDes          float64
	step          float64
	mode          planMode

	cfg     solver.Config
	solveErr error
}

func newPlanModel(s *stack.Stack, transmissions []float64, tDes float64) planModel {
	m := planModel{
		stack:         s,
		transmissions: transmissions,
		tDes:          tDes,
		step:          1.5,
		mode:          planFloor,
	}
	m.resolve()
	return m
}

// resolve recomputes the configuration for the current target and mode.
func (m *planModel) resolve() {
	switch m.mode {
	case planPriority:
		m.cfg, m.solveErr = solver.BestConfigWithMaterialPriority(
			m.stack.Materials(), m.transmissions, m.stack.MaterialOrder, m.tDes)
	default:
		mode := solver.ModeFloor
		if m.mode == planCeiling {
			mode = solver.ModeCeiling
		}
		m.cfg, m.solveErr = solver.BestConfig(m.transmissions, m.tDes, mode)
	}
}

func (m planModel) Init() tea.Cmd {
	return nil
}

func (m planModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if t := m.tDes * m.step; t <= 1 {
			m.tDes = t
		} else {
			m.tDes = 1
		}
	case "down", "j":
		m.tDes /= m.step
	case "left", "h":
		if m.step > 1.01 {
			m.step = 1 + (m.step-1)/2
		}
	case "right", "l":
		m.step = 1 + (m.step-1)*2
	case "m":
		m.mode = (m.mode + 1) % 3
	default:
		return m, nil
	}
	m.resolve()
	return m, nil
}

func (m planModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Attenuation Planner"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%g eV", m.stack.PhotonEnergyEV)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ adjust target  ←/→ step size  m mode  q quit"))
	b.WriteString("\n\n")

	if m.solveErr != nil {
		b.WriteString(StyleWarning.Render(m.solveErr.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(renderConfig(m.cfg, m.stack.Materials()))
	b.WriteString("\n")
	b.WriteString(renderSummary(m.tDes, m.cfg))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("mode: %s   step: ×%.3g", m.mode, m.step)))
	b.WriteString("\n")
	return b.String()
}
