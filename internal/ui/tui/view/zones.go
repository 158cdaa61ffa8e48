package view

const (
	zoneLinkToggle = "panel-link-toggle"
	zoneLogs       = "panel-logs"
	zoneQuit       = "panel-quit"
	zoneLogsDebug  = "panel-logs-debug"

	zoneDialogQuitCancel = "dialog-quit-cancel"
	zoneDialogQuitAccept = "dialog-quit-accept"
)
