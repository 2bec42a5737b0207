package bot

import "fmt"

const msgNoCommand = "Please specify a command. Available commands:\n" +
	"• `/hub login <username> <password>` - Login to Kerberos.io\n" +
	"• `/hub profile` - View your profile\n" +
	"• `/hub logout` - Logout from Kerberos.io\n" +
	"• `/hub help` - Show this help message"

const msgLoginUsage = "Usage: `/hub login <username> <password>`\n\n" +
	"⚠️ *Note:* This is for demonstration. In production, use OAuth or secure token-based authentication."

const msgAuthenticating = "🔐 Authenticating with Kerberos.io..."

const msgFetchingProfile = "📊 Fetching your profile..."

const msgNotLoggedIn = "❌ You are not logged in. Please use `/hub login <username> <password>` first."

const msgLogoutNotLoggedIn = "❌ You are not logged in."

const msgHelp = `*Kerberos.io Hub Bot - Available Commands*

🔐 *Authentication*
• ` + "`/hub login <username> <password>`" + ` - Login to Kerberos.io
• ` + "`/hub logout`" + ` - Logout from current session

📊 *Information*
• ` + "`/hub profile`" + ` - View your profile information

❓ *Help*
• ` + "`/hub help`" + ` - Show this help message

⚠️ *Security Note:* Passing passwords in Slack commands is for demonstration purposes. In production, use OAuth or secure authentication methods.`

func msgUnknownCommand(subcommand string) string {
	return fmt.Sprintf("Unknown command: `%s`. Use `/hub help` to see available commands.", subcommand)
}

func msgLoginSuccess(username string) string {
	return fmt.Sprintf("✅ Successfully logged in as *%s*!\n\nYou can now use:\n"+
		"• `/hub profile` to view your profile\n"+
		"• `/hub logout` to logout", username)
}

func msgLoginFailed(reason string) string {
	return fmt.Sprintf("❌ Login failed: %s\n\n_Note: Make sure the API endpoint is correct and your credentials are valid._", reason)
}

func msgProfileFailed(reason string) string {
	return fmt.Sprintf("❌ Failed to fetch profile: %s\n\n_Your session may have expired. Try logging in again with `/hub login`._", reason)
}

func msgLogoutSuccess(username string) string {
	return fmt.Sprintf("✅ Successfully logged out from *%s*.", username)
}
