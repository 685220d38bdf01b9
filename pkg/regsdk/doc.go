/*
Package regsdk provides a client SDK for the enrolld registration service,
plus the wire types and error schema shared between server and clients.

Errors follow RFC 9457 "Problem Details for HTTP APIs" with urn:error:*
type URNs:

	{
	  "type": "urn:error:invalid-credentials",
	  "title": "Invalid Credentials",
	  "detail": "The presented credentials are invalid.",
	  "correlation_id": "01JC5M4Y0N4Q2W8R9T0VXABCDE"
	}

Create a Client to interact with the service:

	client := regsdk.NewClient("https://enrolld.example.org")

	user, err := client.CreateUser(ctx, regsdk.CreateUserRequest{
	    EmailAddress: "john.doe@example.org",
	    Password:     "hunter2",
	})

Authenticated calls take the account credentials directly, since the
service authenticates every request with HTTP Basic:

	user, err = client.GetSelf(ctx, "john.doe@example.org", "hunter2")
	err = client.Validate(ctx, "john.doe@example.org", "hunter2", "0183")
*/
package regsdk
