package notify

import (
	"fmt"
	"os/exec"
)

type notificationTool struct {
	name         string
	buildCommand func(tool string, title string, message string, nType NotificationType) *exec.Cmd
}

var notificationTools = []notificationTool{
	{
		name: "notify-send",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			urgency := "normal"
			if nType == Error {
				urgency = "critical"
			}
			return exec.Command(tool, "-u", urgency, "-a", title, title, message)
		},
	},
	{
		name: "dunstify",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			urgency := "normal"
			if nType == Error {
				urgency = "critical"
			}
			return exec.Command(tool, "-u", urgency, "-t", "3000", title, message)
		},
	},
	{
		// Hyprland's own notification overlay
		name: "hyprctl",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			icon, color := "1", "rgb(66ee66)"
			if nType == Error {
				icon, color = "3", "rgb(ee6666)"
			}
			return exec.Command(tool, "notify", icon, "3000", color, title+": "+message)
		},
	},
}

func (n *NotifyService) trySystemNotification(title string, message string, nType NotificationType) error {
	for _, tool := range n.tools {
		if _, err := exec.LookPath(tool.name); err != nil {
			continue
		}
		cmd := tool.buildCommand(tool.name, title, message, nType)
		if err := cmd.Run(); err == nil {
			n.log.Debug("Notification sent successfully",
				"tool", tool.name,
				"type", nType)
			return nil
		}
	}
	return fmt.Errorf("no notification tools available")
}
