package menu

const (
	msgCopy               = "Password file selection, choose the password you wish to copy."
	msgChooseDir          = "Directory selection, choose one of the existing directories, or type a new custom one."
	msgChooseFileName     = "File name input, type the file name you wish to save the password to. It could be the url of the site the password belongs to, or just the name, for example archlinux.org, or just simply archlinux."
	msgChooseEntryType    = "Input method selection, choose if you wish to have a password simply generated for you, or if you wish to add an already existing one."
	msgChooseFile         = "Password changing file selection, type the file name of the password you wish to change."
	msgChooseNewEntryType = "Input method selection, choose if you wish to have the new password simply generated for you, or if you wish to change to your own existing one."
)

// Message returns the hint shown above the list for m. Initial has none.
func Message(m Menu) string {
	switch m := m.(type) {
	case CopyPass:
		return msgCopy
	case AddPass:
		switch m.Step {
		case ChooseDir:
			return msgChooseDir
		case ChooseFileName:
			return msgChooseFileName
		case ChooseEntryType:
			return msgChooseEntryType
		}
	case ChangePass:
		switch m.Step {
		case ChooseFile:
			return msgChooseFile
		case ChooseNewPassEntryType:
			return msgChooseNewEntryType
		}
	}
	return ""
}
