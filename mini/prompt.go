package mini

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/streamsan-cli/streamsan/color"
	"github.com/streamsan-cli/streamsan/icon"
	"github.com/streamsan-cli/streamsan/source"
	"github.com/streamsan-cli/streamsan/style"
	"github.com/streamsan-cli/streamsan/util"
)

const backOption = "← Back"

const menuPageSize = 15

func title(t string) {
	fmt.Println(style.Bold(t))
}

func progress(message string) func() {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), style.Faint(message)))
}

func fail(message string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(message))
}

func selectString(message string, options []string, def string) (string, error) {
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: menuPageSize,
	}
	if def != "" {
		prompt.Default = def
	}

	var answer string
	err := survey.AskOne(prompt, &answer)
	return answer, err
}

// selectIndex prompts over numbered labels and resolves the chosen index.
// ok is false when the user picks the trailing back option.
func selectIndex(message string, labels []string) (int, bool, error) {
	options := make([]string, 0, len(labels)+1)
	for i, label := range labels {
		options = append(options, fmt.Sprintf("%d. %s", i+1, label))
	}
	options = append(options, backOption)

	choice, err := selectString(message, options, "")
	if err != nil || choice == backOption {
		return 0, false, err
	}

	var index int
	fmt.Sscanf(choice, "%d.", &index)
	if index < 1 || index > len(labels) {
		return 0, false, nil
	}

	return index - 1, true, nil
}

func input(message, def string, suggest func(string) []string) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Default: def,
		Suggest: suggest,
	}

	var answer string
	err := survey.AskOne(prompt, &answer)
	return strings.TrimSpace(answer), err
}

func confirm(message string, def bool) bool {
	answer := def
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer); err != nil {
		return false
	}

	return answer
}

func (m *mini) chooseMedia(media []*source.Media) (*source.Media, bool, error) {
	labels := make([]string, len(media))
	for i, item := range media {
		labels[i] = fmt.Sprintf("%s [%s]", item, util.Capitalize(string(item.Type)))
	}

	index, ok, err := selectIndex("Pick a title", labels)
	if err != nil || !ok {
		return nil, false, err
	}

	return media[index], true, nil
}
