package locators

// Success copy.
const (
	MsgRegistrationSuccess    = "Your registration completed"
	MsgLoginSuccess           = "Welcome back"
	MsgPasswordResetSuccess   = "Password was changed"
	MsgProductAddedToCart     = "The product has been added to your shopping cart"
	MsgProductAddedToWishlist = "The product has been added to your wishlist"
	MsgProductAddedToCompare  = "The product has been added to your product comparison"
	MsgRecoveryEmailSent      = "Email with instructions has been sent"
)

// Error copy.
const (
	MsgLoginUnsuccessful    = "Login was unsuccessful"
	MsgEmailAlreadyExists   = "The specified email already exists"
	MsgPasswordMismatch     = "The password and confirmation password do not match"
	MsgWeakPassword         = "Password must meet the following rules"
	MsgInvalidEmail         = "Wrong email"
	MsgRequiredField        = "is required"
	MsgSearchTermMinLength  = "Search term minimum length is 3 characters"
	MsgEnterSearchKeyword   = "Please enter some search keyword"
	MsgNoProductsFound      = "No products were found"
	MsgRecoveryEmailMissing = "Email not found"
)

// Field validation copy.
const (
	MsgEmailRequired     = "Email is required"
	MsgPasswordRequired  = "Password is required"
	MsgFirstNameRequired = "First name is required"
	MsgLastNameRequired  = "Last name is required"
)

// Page titles.
const (
	TitleLogin          = "Welcome, Please Sign In!"
	TitleRegister       = "Register"
	TitleForgotPassword = "Password Recovery"
	TitleProduct        = "Product"
	TitleHome           = "Welcome to our store"
)

// Top level category names as shown in the menu.
const (
	CategoryComputers   = "Computers"
	CategoryElectronics = "Electronics"
	CategoryBooks       = "Books"
	CategoryJewelry     = "Jewelry"
	CategoryApparel     = "Apparel"
)
